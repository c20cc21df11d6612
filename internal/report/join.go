package report

import (
	"strings"

	"github.com/totegamma/council-reports/internal/domain"
)

// Child is a record that references a parent entity.
type Child interface {
	Parent() string
}

// ChildrenOf keeps the items whose reference equals entityID. An empty
// reference never matches, not even an empty id.
func ChildrenOf[T Child](items []T, entityID string) []T {
	id := strings.TrimSpace(entityID)
	out := make([]T, 0)
	if id == "" {
		return out
	}
	for _, item := range items {
		ref := strings.TrimSpace(item.Parent())
		if ref != "" && ref == id {
			out = append(out, item)
		}
	}
	return out
}

// FindEntity resolves an entity by record id.
func FindEntity(entities []domain.Entity, id string) (domain.Entity, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Entity{}, false
	}
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entity{}, false
}
