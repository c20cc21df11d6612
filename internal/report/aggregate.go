package report

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/totegamma/council-reports/internal/domain"
)

// Included drops excluded entities, keeping source order.
func Included(entities []domain.Entity) []domain.Entity {
	out := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Excluded() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Totals are the summed figures of a group of entities.
type Totals struct {
	Raised    float64              `json:"raised"`
	Returned  float64              `json:"returned"`
	Spent     float64              `json:"spent"`
	Projects  float64              `json:"projects"`
	Offerings float64              `json:"offerings"`
	Spend     domain.CategorySpend `json:"spend"`
	Entities  int                  `json:"entities"`
}

// Aggregate sums every figure over entities. Amounts are added as decimals
// so the result does not depend on input order.
func Aggregate(entities []domain.Entity) Totals {
	var raised, returned, spent, projects, offerings decimal.Decimal
	var spend [domain.NumCategories]decimal.Decimal

	for _, e := range entities {
		raised = raised.Add(dec(e.TotalRaised.Value))
		returned = returned.Add(dec(e.TotalReturned))
		spent = spent.Add(dec(e.Spent()))
		projects = projects.Add(dec(e.Projects.Value))
		offerings = offerings.Add(dec(e.Offerings))
		for _, c := range domain.Categories {
			spend[c] = spend[c].Add(dec(e.Spend[c]))
		}
	}

	t := Totals{
		Raised:    raised.InexactFloat64(),
		Returned:  returned.InexactFloat64(),
		Spent:     spent.InexactFloat64(),
		Projects:  projects.InexactFloat64(),
		Offerings: offerings.InexactFloat64(),
		Entities:  len(entities),
	}
	for _, c := range domain.Categories {
		t.Spend[c] = spend[c].InexactFloat64()
	}
	return t
}

func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Summary is the synthetic "all councils" aggregate. It is deliberately not
// an Entity, so it can never take part in a join.
type Summary struct {
	Label string `json:"label"`
	Totals
}

// AllCouncilsLabel names the aggregate in pickers.
const AllCouncilsLabel = "All councils"

func Summarize(entities []domain.Entity) Summary {
	return Summary{Label: AllCouncilsLabel, Totals: Aggregate(entities)}
}
