package record

import (
	"strings"
	"time"

	"github.com/totegamma/council-reports/internal/domain"
)

func Entity(r Record) domain.Entity {
	e := domain.Entity{
		ID:            r.ID,
		Name:          r.Text(domain.FieldName),
		Description:   r.Text(domain.FieldDescription),
		Hub:           r.URL(domain.FieldHub),
		Color:         r.Text(domain.FieldColor),
		Logo:          r.URL(domain.FieldLogo),
		Status:        r.Status(domain.FieldRaiseStatus),
		TotalRaised:   r.Amount(domain.FieldTotalRaised),
		TotalReturned: r.Number(domain.FieldTotalReturned),
		TotalSpent:    r.Amount(domain.FieldTotalSpent),
		Offerings:     r.Number(domain.FieldLoans),
		Projects:      r.Amount(domain.FieldProjectsFunded),
	}
	for _, c := range domain.Categories {
		e.Spend[c] = r.Number(c.Field())
	}
	return e
}

func Offering(r Record) domain.Offering {
	o := domain.Offering{
		ID:        r.ID,
		Name:      r.Text(domain.FieldInvestmentName),
		Strapline: r.Text(domain.FieldStrapline),
		URL:       r.URL(domain.FieldURL),
		Color:     r.Text(domain.FieldColor),
		Logo:      r.URL(domain.FieldLogo),
		Rate:      r.Amount(domain.FieldRate),
		Term:      r.Amount(domain.FieldTerm),
		Repayment: repayment(r.Text(domain.FieldRepayment)),
		Status:    r.Status(domain.FieldRaiseStatus),
		Raised:    r.Amount(domain.FieldLoanAmount),
		CloseText: r.Text(domain.FieldCloseDate),
		EntityRef: r.Ref(domain.FieldEntityRef),
	}
	o.CloseDate, _ = ParseTime(o.CloseText)
	return o
}

func repayment(v string) domain.Repayment {
	switch strings.ToLower(v) {
	case "maturity":
		return domain.RepaymentMaturity
	case "annuity":
		return domain.RepaymentAnnuity
	default:
		return domain.RepaymentOther
	}
}

func Project(r Record) domain.Project {
	p := domain.Project{
		ID:          r.ID,
		Name:        r.Text(domain.FieldProjectName),
		Category:    r.Text(domain.FieldCategory),
		Description: r.Text(domain.FieldDescriptionText),
		TotalSpent:  r.Number(domain.FieldTotalSpent),
		EntityRef:   r.Ref(domain.FieldEntityRef),
	}
	p.Created, _ = ParseTime(r.CreatedTime)
	return p
}

func Entities(records []Record) []domain.Entity {
	return decodeAll(records, Entity)
}

func Offerings(records []Record) []domain.Offering {
	return decodeAll(records, Offering)
}

func Projects(records []Record) []domain.Project {
	return decodeAll(records, Project)
}

func decodeAll[T any](records []Record, decode func(Record) T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, decode(r))
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
	"2 January 2006",
	"January 2, 2006",
}

// ParseTime reads the date formats the record store emits. The zero time
// is returned when nothing matches.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
