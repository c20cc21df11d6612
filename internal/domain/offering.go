package domain

import "time"

// Repayment describes how capital is returned to investors.
type Repayment int

const (
	RepaymentOther Repayment = iota
	RepaymentMaturity
	RepaymentAnnuity
)

func (r Repayment) String() string {
	switch r {
	case RepaymentMaturity:
		return "maturity"
	case RepaymentAnnuity:
		return "annuity"
	default:
		return "other"
	}
}

// Offering is a single investment raised on behalf of an entity.
type Offering struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Strapline string    `json:"strapline"`
	URL       string    `json:"url"`
	Color     string    `json:"color"`
	Logo      string    `json:"logo"`
	Rate      Amount    `json:"rate"`
	Term      Amount    `json:"term"`
	Repayment Repayment `json:"repayment"`
	Status    StatusSet `json:"status"`
	Raised    Amount    `json:"raised"`
	CloseDate time.Time `json:"closeDate"`
	CloseText string    `json:"closeText"`
	EntityRef string    `json:"entityRef"`
}

func (o Offering) Parent() string { return o.EntityRef }

// Project is a spend line reported by an entity against one category.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	TotalSpent  float64   `json:"totalSpent"`
	Created     time.Time `json:"created"`
	EntityRef   string    `json:"entityRef"`
}

func (p Project) Parent() string { return p.EntityRef }
