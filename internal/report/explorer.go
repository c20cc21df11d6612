package report

import (
	"sort"

	"github.com/totegamma/council-reports/internal/chart"
	"github.com/totegamma/council-reports/internal/domain"
)

// AllCouncilsKey selects the aggregate panel.
const AllCouncilsKey = "all"

// Explorer compares category spend across councils.
type Explorer struct {
	Complete bool            `json:"complete"`
	State    State           `json:"state"`
	Message  string          `json:"message,omitempty"`
	Options  []Option        `json:"options"`
	Selected string          `json:"selected"`
	Panels   []ExplorerPanel `json:"panels"`
}

type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ExplorerPanel struct {
	Key     string      `json:"key"`
	Label   string      `json:"label"`
	Badge   PanelBadge  `json:"badge"`
	Summary []string    `json:"summary"`
	Chart   chart.Chart `json:"chart"`
}

type PanelBadge struct {
	Background string `json:"background"`
	Logo       string `json:"logo,omitempty"`
	Href       string `json:"href,omitempty"`
}

// Panel returns the panel for key.
func (e Explorer) Panel(key string) (ExplorerPanel, bool) {
	for _, p := range e.Panels {
		if p.Key == key {
			return p, true
		}
	}
	return ExplorerPanel{}, false
}

func (b *Builder) Explorer(entities Feed[domain.Entity]) Explorer {
	if !entities.OK() {
		ex := Explorer{State: StateFailed, Message: CouncilsFailedMessage, Options: []Option{}, Panels: []ExplorerPanel{}}
		if entities.Pending {
			ex.State, ex.Message = StatePending, ""
		}
		return ex
	}

	// The aggregate counts every named entity; panels keep the first of
	// each name.
	seen := make(map[string]bool)
	var counted, named []domain.Entity
	for _, e := range Included(entities.Items) {
		if e.Name == "" {
			continue
		}
		counted = append(counted, e)
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		named = append(named, e)
	}
	sort.SliceStable(named, func(i, j int) bool { return named[i].Name < named[j].Name })

	all := Summarize(counted)
	panels := make([]ExplorerPanel, 0, len(named)+1)
	panels = append(panels, ExplorerPanel{
		Key:   AllCouncilsKey,
		Label: all.Label,
		Badge: PanelBadge{
			Background: b.site.AllCouncilsBadge.Background,
			Logo:       b.site.AllCouncilsBadge.Logo,
		},
		Summary: b.summaryLines(all.Offerings, all.Spent, all.Projects),
		Chart:   b.palette.PercentOfMax(all.Spend, b.format.Compact),
	})
	for _, e := range named {
		panels = append(panels, ExplorerPanel{
			Key:   e.ID,
			Label: e.Name,
			Badge: PanelBadge{
				Background: or(e.Color, defaultBadgeColor),
				Logo:       e.Logo,
				Href:       e.Hub,
			},
			Summary: b.summaryLines(e.Offerings, e.Spent(), e.Projects.Value),
			Chart:   b.palette.PercentOfMax(e.Spend, b.format.Compact),
		})
	}

	options := make([]Option, 0, len(panels))
	for _, p := range panels {
		options = append(options, Option{Key: p.Key, Label: p.Label})
	}

	return Explorer{
		State:    StateReady,
		Options:  options,
		Selected: AllCouncilsKey,
		Panels:   panels,
	}
}
