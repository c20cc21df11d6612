package report

import (
	"github.com/totegamma/council-reports/internal/chart"
	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/format"
)

// Builder turns decoded collections into page view models.
type Builder struct {
	format  *format.Formatter
	palette chart.Palette
	site    domain.SiteCopy
}

func NewBuilder(f *format.Formatter, palette chart.Palette, site domain.SiteCopy) *Builder {
	if f == nil {
		f = format.ASCII()
	}
	if len(palette) == 0 {
		palette = chart.DefaultPalette
	}
	return &Builder{
		format:  f,
		palette: palette,
		site:    site,
	}
}

// summaryLines are the three headline lines shown beside a badge.
func (b *Builder) summaryLines(offerings, spent, projects float64) []string {
	return []string{
		b.format.Plural(offerings, "investment", ""),
		b.format.Compact(spent) + " spent",
		b.format.Plural(projects, "project financed", "projects financed"),
	}
}
