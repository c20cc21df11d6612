package report

import (
	"sort"

	"github.com/totegamma/council-reports/internal/domain"
)

// TopProjectsLimit is how many projects a dashboard shows.
const TopProjectsLimit = 3

// TopProjects orders by spend, then by most recent creation, and keeps at
// most n. Projects without a creation time sort as oldest.
func TopProjects(projects []domain.Project, n int) []domain.Project {
	ranked := append([]domain.Project(nil), projects...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalSpent != b.TotalSpent {
			return a.TotalSpent > b.TotalSpent
		}
		return a.Created.After(b.Created)
	})
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
