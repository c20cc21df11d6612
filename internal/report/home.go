package report

import "github.com/totegamma/council-reports/internal/domain"

// HomeStats are the headline figures on the landing page. Available is
// false when the councils feed could not be read.
type HomeStats struct {
	Complete         bool   `json:"complete"`
	Available        bool   `json:"available"`
	SpentOnProjects  string `json:"spentOnProjects,omitempty"`
	ProjectsFinanced string `json:"projectsFinanced,omitempty"`
}

func (b *Builder) Home(entities Feed[domain.Entity]) HomeStats {
	if !entities.OK() {
		return HomeStats{}
	}
	totals := Aggregate(Included(entities.Items))
	return HomeStats{
		Available:        true,
		SpentOnProjects:  b.format.CompactN(totals.Spent, 1),
		ProjectsFinanced: b.format.Int(totals.Projects),
	}
}
