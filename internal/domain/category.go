package domain

import (
	"regexp"
	"strings"
)

// Category is one of the six fixed green-spend categories.
type Category int

const (
	RenewableEnergy Category = iota
	EnergyEfficiency
	CleanTransportation
	PollutionPrevention
	ClimateChangeAdaptation
	LivingNaturalResources

	NumCategories = 6
)

// Categories lists every category in display order.
var Categories = [NumCategories]Category{
	RenewableEnergy,
	EnergyEfficiency,
	CleanTransportation,
	PollutionPrevention,
	ClimateChangeAdaptation,
	LivingNaturalResources,
}

var categoryFields = [NumCategories]string{
	"renewableEnergySpend",
	"energyEfficiencySpend",
	"cleanTransportationSpend",
	"pollutionPreventionSpend",
	"climateChangeAdaptationSpend",
	"livingNationalResourcesSpend",
}

var categoryLabels = [NumCategories]string{
	"Renewable energy",
	"Energy efficiency",
	"Clean transportation",
	"Pollution prevention and control",
	"Climate change adaptation",
	"Living and natural resources",
}

// Field is the source record field holding this category's spend.
func (c Category) Field() string { return categoryFields[c] }

func (c Category) Label() string { return categoryLabels[c] }

func (c Category) String() string { return c.Label() }

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// CategoryKey normalizes a free-text category label for matching.
func CategoryKey(label string) string {
	k := strings.ToLower(strings.TrimSpace(label))
	k = strings.ReplaceAll(k, "&", " and ")
	k = nonAlnum.ReplaceAllString(k, " ")
	return strings.Join(strings.Fields(k), " ")
}

// CategoryByLabel finds the fixed category whose label matches label.
func CategoryByLabel(label string) (Category, bool) {
	key := CategoryKey(label)
	if key == "" {
		return 0, false
	}
	for _, c := range Categories {
		if CategoryKey(c.Label()) == key {
			return c, true
		}
	}
	return 0, false
}

// CategorySpend holds one amount per category, indexed by Category.
type CategorySpend [NumCategories]float64

func (s CategorySpend) Total() float64 {
	var t float64
	for _, v := range s {
		t += v
	}
	return t
}

func (s CategorySpend) Max() float64 {
	var m float64
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}
