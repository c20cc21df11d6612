// Package chart builds bar-chart models of category spend.
package chart

import (
	"math"
	"sort"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/format"
)

// EmptyMessage is shown when there is no spend to chart.
const EmptyMessage = "This council has not yet reported data on how they have spent the money raised. Please check again later."

// MinWidth keeps small positive bars visible in percent-of-max charts.
const MinWidth = 10.0

type Row struct {
	Category domain.Category `json:"-"`
	Label    string          `json:"label"`
	Value    float64         `json:"value"`
	Width    float64         `json:"width"`
	Text     string          `json:"text"`
	Color    string          `json:"color"`
}

type Chart struct {
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
	Rows    []Row  `json:"rows"`
}

func empty() Chart {
	return Chart{Empty: true, Message: EmptyMessage, Rows: []Row{}}
}

// PercentOfMax sizes every category relative to the largest one. Rows keep
// the fixed category order and each value is rendered with label.
func (p Palette) PercentOfMax(spend domain.CategorySpend, label func(float64) string) Chart {
	top := spend.Max()
	if top <= 0 {
		return empty()
	}

	rows := make([]Row, 0, domain.NumCategories)
	for _, c := range domain.Categories {
		v := spend[c]
		var w float64
		if v > 0 {
			w = math.Max(v/top*100, MinWidth)
		}
		rows = append(rows, Row{
			Category: c,
			Label:    c.Label(),
			Value:    v,
			Width:    w,
			Text:     label(v),
			Color:    p.Color(c),
		})
	}
	return Chart{Rows: rows}
}

// PercentOfTotal sizes each positive category as a share of total, largest
// first. Spend outside the six categories is not drawn. The denominator
// never drops below the category sum so shares cannot exceed 100% overall.
func (p Palette) PercentOfTotal(spend domain.CategorySpend, total float64) Chart {
	if !(total > 0) {
		return empty()
	}

	var sum float64
	for _, v := range spend {
		if v > 0 {
			sum += v
		}
	}
	denom := math.Max(total, sum)

	rows := make([]Row, 0, domain.NumCategories)
	for _, c := range domain.Categories {
		v := spend[c]
		if !(v > 0) {
			continue
		}
		pct := math.Min(100, math.Max(0, v/denom*100))
		rows = append(rows, Row{
			Category: c,
			Label:    c.Label(),
			Value:    v,
			Width:    pct,
			Text:     format.Share(pct),
			Color:    p.Color(c),
		})
	}
	if len(rows) == 0 {
		return empty()
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Width > rows[j].Width
	})
	return Chart{Rows: rows}
}
