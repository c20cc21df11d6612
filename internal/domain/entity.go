package domain

import "strings"

// Amount is a numeric field that may be absent from the source record.
type Amount struct {
	Value float64 `json:"value"`
	Known bool    `json:"known"`
}

// Entity is an issuing council as published in the councils collection.
type Entity struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Hub           string        `json:"hub"`
	Color         string        `json:"color"`
	Logo          string        `json:"logo"`
	Status        StatusSet     `json:"status"`
	TotalRaised   Amount        `json:"totalRaised"`
	TotalReturned float64       `json:"totalReturned"`
	TotalSpent    Amount        `json:"totalSpent"`
	Offerings     float64       `json:"offerings"`
	Projects      Amount        `json:"projectsFunded"`
	Spend         CategorySpend `json:"spend"`
}

// Spent returns the reported spend, falling back to the category sum.
func (e Entity) Spent() float64 {
	if e.TotalSpent.Known {
		return e.TotalSpent.Value
	}
	return e.Spend.Total()
}

// Excluded reports whether the entity is hidden from every listing and aggregate.
func (e Entity) Excluded() bool {
	return e.Status.ComingSoon() || strings.TrimSpace(e.Hub) == ""
}
