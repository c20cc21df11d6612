package report

import (
	"strconv"

	"github.com/totegamma/council-reports/internal/domain"
)

const (
	NoOpenCouncilsMessage = "There are no councils with open investments right now. Please check again later."
	CouncilsFailedMessage = "Sorry, we couldn't load councils right now."
)

// Directory is the council listing page.
type Directory struct {
	Complete bool                `json:"complete"`
	Stats    DirectoryStats      `json:"stats"`
	Open     Section[EntityTile] `json:"open"`
	Others   Section[EntityTile] `json:"others"`
	Excluded int                 `json:"excluded"`
}

type DirectoryStats struct {
	TotalInvested string `json:"totalInvested"`
	TotalReturned string `json:"totalReturned"`
	Councils      string `json:"councils"`
}

func (b *Builder) Directory(entities Feed[domain.Entity]) Directory {
	if !entities.OK() {
		return Directory{
			Open:   unavailable[EntityTile](entities, CouncilsFailedMessage),
			Others: unavailable[EntityTile](entities, ""),
		}
	}

	included := Included(entities.Items)
	totals := Aggregate(included)

	var open, others []EntityTile
	for _, e := range included {
		if e.Status.Open() {
			open = append(open, b.entityTile(e))
		} else {
			others = append(others, b.entityTile(e))
		}
	}

	return Directory{
		Stats: DirectoryStats{
			TotalInvested: b.format.CompactN(totals.Raised, 1),
			TotalReturned: b.format.CompactN(totals.Returned, 1),
			Councils:      strconv.Itoa(totals.Entities),
		},
		Open:     sectionOf(open, NoOpenCouncilsMessage),
		Others:   sectionOf(others, ""),
		Excluded: len(entities.Items) - len(included),
	}
}
