package report

import (
	"sort"
	"strings"

	"github.com/totegamma/council-reports/internal/chart"
	"github.com/totegamma/council-reports/internal/domain"
)

const (
	ProjectsTitle = "Top projects financed"
	HistoryTitle  = "Investment history"

	noOpenBackground = "#ffedcc"
)

// Mode selects which hero block a dashboard shows.
type Mode string

const (
	ModeOpen   Mode = "open"
	ModeNoOpen Mode = "no-open"
)

// Dashboard is the single-council page.
type Dashboard struct {
	Complete   bool                  `json:"complete"`
	Header     Header                `json:"header"`
	Mode       Mode                  `json:"mode"`
	NoOpen     *NoOpenPanel          `json:"noOpen,omitempty"`
	Summary    []string              `json:"summary"`
	Spend      SpendSection          `json:"spend"`
	Projects   Section[ProjectCard]  `json:"projects"`
	Open       Section[OfferingTile] `json:"open"`
	History    Section[HistoryRow]   `json:"history"`
	HistoryCTA *domain.CallToAction  `json:"historyCta,omitempty"`
}

type Header struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Href       string `json:"href,omitempty"`
	Background string `json:"background"`
	Logo       string `json:"logo,omitempty"`
}

type NoOpenPanel struct {
	domain.CallToAction
	Background string `json:"background"`
}

// SpendSection holds either a chart or the fallback image shown when the
// council has reported no spend. Both are nil when there is neither.
type SpendSection struct {
	Chart    *chart.Chart  `json:"chart,omitempty"`
	Fallback *domain.Image `json:"fallback,omitempty"`
}

type ProjectCard struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Category   string        `json:"category,omitempty"`
	Pill       *chart.Swatch `json:"pill,omitempty"`
	Spent      string        `json:"spent"`
	Paragraphs []string      `json:"paragraphs"`
}

// Dashboard assembles the page for entity. The offering and project feeds
// are rendered independently so one failing leaves the other intact.
func (b *Builder) Dashboard(entity domain.Entity, offerings Feed[domain.Offering], projects Feed[domain.Project]) Dashboard {
	d := Dashboard{
		Header: Header{
			ID:         entity.ID,
			Name:       entity.Name,
			Href:       entity.Hub,
			Background: or(entity.Color, defaultBadgeColor),
			Logo:       entity.Logo,
		},
		Mode:    ModeNoOpen,
		Summary: b.summaryLines(entity.Offerings, entity.Spent(), entity.Projects.Value),
		Spend:   b.spendSection(entity),
	}

	if entity.Status.Open() {
		d.Mode = ModeOpen
	} else {
		d.NoOpen = &NoOpenPanel{CallToAction: b.site.NoOpen, Background: noOpenBackground}
	}

	d.Projects = b.projectSection(entity, projects)
	d.Projects.Title = ProjectsTitle

	if d.Mode == ModeOpen {
		d.Open = b.openSection(entity, offerings)
	} else {
		d.Open = Section[OfferingTile]{State: StateEmpty, Items: []OfferingTile{}}
	}

	d.History = b.historySection(entity, offerings)
	d.History.Title = HistoryTitle
	if d.History.State == StateEmpty {
		cta := b.site.EmptyHistory
		d.HistoryCTA = &cta
	}
	return d
}

func (b *Builder) spendSection(entity domain.Entity) SpendSection {
	spent := entity.Spent()
	if !(spent > 0) {
		if b.site.NoChartImage.URL == "" {
			return SpendSection{}
		}
		img := b.site.NoChartImage
		return SpendSection{Fallback: &img}
	}
	c := b.palette.PercentOfTotal(entity.Spend, spent)
	return SpendSection{Chart: &c}
}

func (b *Builder) projectSection(entity domain.Entity, projects Feed[domain.Project]) Section[ProjectCard] {
	if !projects.OK() {
		return unavailable[ProjectCard](projects, "")
	}
	top := TopProjects(ChildrenOf(projects.Items, entity.ID), TopProjectsLimit)
	cards := make([]ProjectCard, 0, len(top))
	for _, p := range top {
		cards = append(cards, b.projectCard(p))
	}
	return sectionOf(cards, "")
}

func (b *Builder) projectCard(p domain.Project) ProjectCard {
	card := ProjectCard{
		ID:         p.ID,
		Name:       or(p.Name, defaultProjectName),
		Category:   p.Category,
		Spent:      b.format.CurrencyPence(p.TotalSpent),
		Paragraphs: paragraphs(p.Description),
	}
	if p.Category != "" {
		swatch := chart.Contrast(b.palette.ForLabel(p.Category))
		card.Pill = &swatch
	}
	return card
}

// paragraphs splits text on line breaks, dropping blank lines.
func paragraphs(text string) []string {
	out := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (b *Builder) openSection(entity domain.Entity, offerings Feed[domain.Offering]) Section[OfferingTile] {
	if !offerings.OK() {
		return unavailable[OfferingTile](offerings, OfferingsFailedMessage)
	}
	tiles := b.openTiles(ChildrenOf(offerings.Items, entity.ID), "")
	return sectionOf(tiles, NoOpenOfferingsForEntityMessage)
}

func (b *Builder) historySection(entity domain.Entity, offerings Feed[domain.Offering]) Section[HistoryRow] {
	if !offerings.OK() {
		return unavailable[HistoryRow](offerings, "")
	}
	var closed []domain.Offering
	for _, o := range ChildrenOf(offerings.Items, entity.ID) {
		if o.Status.Closed() {
			closed = append(closed, o)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].CloseDate.After(closed[j].CloseDate)
	})

	rows := make([]HistoryRow, 0, len(closed))
	for _, o := range closed {
		rows = append(rows, b.historyRow(o))
	}
	return sectionOf(rows, "")
}
