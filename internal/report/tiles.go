package report

import (
	"strconv"
	"strings"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/format"
)

const (
	defaultEntityName   = "Council"
	defaultOfferingName = "Investment"
	defaultProjectName  = "Project"
	defaultTileColor    = "#0f172a"
	defaultBadgeColor   = "#f3f4f6"
	noLink              = "#"
)

// EntityTile is a council card in the directory.
type EntityTile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
	Background  string `json:"background"`
	Logo        string `json:"logo,omitempty"`
	Badges      []Pill `json:"badges"`
}

func (b *Builder) entityTile(e domain.Entity) EntityTile {
	t := EntityTile{
		ID:          e.ID,
		Name:        or(e.Name, defaultEntityName),
		Description: e.Description,
		Href:        or(e.Hub, noLink),
		Background:  or(e.Color, defaultTileColor),
		Logo:        e.Logo,
		Badges:      []Pill{},
	}
	if e.TotalRaised.Known {
		t.Badges = append(t.Badges, Pill{Kind: "raised", Tone: TonePink, Text: b.format.Compact(e.TotalRaised.Value) + " raised"})
	}
	if e.Projects.Known {
		t.Badges = append(t.Badges, Pill{Kind: "projects", Tone: ToneBlue, Text: b.format.Int(e.Projects.Value) + " projects financed"})
	}
	if e.TotalSpent.Known {
		t.Badges = append(t.Badges, Pill{Kind: "spent", Tone: ToneYellow, Text: b.format.Compact(e.TotalSpent.Value) + " spent"})
	}
	return t
}

// OfferingTile is an investment card.
type OfferingTile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Strapline  string `json:"strapline,omitempty"`
	Href       string `json:"href"`
	Clickable  bool   `json:"clickable"`
	Background string `json:"background"`
	Logo       string `json:"logo,omitempty"`
	Pills      []Pill `json:"pills"`
}

func (b *Builder) offeringTile(o domain.Offering, defaultStrapline string) OfferingTile {
	href := or(o.URL, noLink)
	t := OfferingTile{
		ID:         o.ID,
		Name:       or(o.Name, defaultOfferingName),
		Strapline:  or(o.Strapline, defaultStrapline),
		Href:       href,
		Clickable:  href != noLink,
		Background: or(o.Color, defaultTileColor),
		Logo:       o.Logo,
		Pills:      []Pill{},
	}
	if o.Rate.Known {
		t.Pills = append(t.Pills, Pill{Kind: "rate", Tone: TonePink, Text: format.PercentText(o.Rate.Value, 1) + "% a year"})
	}
	if o.Term.Value != 0 {
		t.Pills = append(t.Pills, Pill{Kind: "term", Tone: ToneBlue, Text: trimNumber(o.Term.Value) + " year term"})
	}
	switch o.Repayment {
	case domain.RepaymentMaturity:
		t.Pills = append(t.Pills, Pill{Kind: "capital", Tone: ToneYellow, Text: "Capital at maturity"})
	case domain.RepaymentAnnuity:
		t.Pills = append(t.Pills, Pill{Kind: "capital", Tone: ToneYellow, Text: "Capital 6 monthly"})
	}
	return t
}

// HistoryRow is one closed offering in the investment history table.
type HistoryRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Href      string `json:"href"`
	Interest  string `json:"interest"`
	Term      string `json:"term"`
	Amount    string `json:"amount"`
	CloseDate string `json:"closeDate"`
}

func (b *Builder) historyRow(o domain.Offering) HistoryRow {
	r := HistoryRow{
		ID:   o.ID,
		Name: or(o.Name, defaultOfferingName),
		Href: or(o.URL, noLink),
	}
	if o.Rate.Known {
		r.Interest = format.PercentText(o.Rate.Value, 1) + "% p.a."
	}
	switch {
	case o.Term.Value == 1:
		r.Term = "1 year"
	case o.Term.Value != 0:
		r.Term = trimNumber(o.Term.Value) + " years"
	}
	if o.Raised.Known {
		r.Amount = b.format.Currency(o.Raised.Value)
	}
	if o.CloseDate.IsZero() {
		r.CloseDate = o.CloseText
	} else {
		r.CloseDate = b.format.Date(o.CloseDate)
	}
	return r
}

func trimNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
