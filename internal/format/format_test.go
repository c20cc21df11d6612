package format

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestCompact(t *testing.T) {
	f := ASCII()
	cases := []struct {
		v    float64
		dp   int
		want string
	}{
		{999, 2, "£999"},
		{1500, 2, "£1.5k"},
		{2_500_000, 1, "£2.5m"},
		{3_200_000_000, 1, "£3.2bn"},
		{1_234_567, 2, "£1.23m"},
		{12_345, 2, "£12.3k"},
		{1000, 2, "£1k"},
		{0, 2, "£0"},
		{12.346, 2, "£12.35"},
		{-1500, 2, "-£1.5k"},
		{-0.001, 2, "£0"},
	}
	for _, tc := range cases {
		if got := f.CompactN(tc.v, tc.dp); got != tc.want {
			t.Fatalf("CompactN(%v, %d) = %q, want %q", tc.v, tc.dp, got, tc.want)
		}
	}
	if got := f.Compact(2_000_000); got != "£2m" {
		t.Fatalf("Compact default decimals: got %q", got)
	}
}

func TestGroupingFallbackMatchesLocale(t *testing.T) {
	ascii := ASCII()
	gb := New(language.BritishEnglish)
	var nilFormatter *Formatter

	for _, f := range []*Formatter{ascii, gb, nilFormatter} {
		if got := f.Int(1_234_567.4); got != "1,234,567" {
			t.Fatalf("Int: got %q", got)
		}
		if got := f.Currency(1234.5); got != "£1,235" {
			t.Fatalf("Currency: got %q", got)
		}
		if got := f.CurrencyPence(1234.5); got != "£1,234.50" {
			t.Fatalf("CurrencyPence: got %q", got)
		}
	}
}

func TestForLocaleFallsBack(t *testing.T) {
	f := ForLocale("not a locale!!")
	if f.printer != nil {
		t.Fatalf("expected ascii fallback for invalid locale")
	}
	if got := f.Int(1000); got != "1,000" {
		t.Fatalf("unexpected grouping %q", got)
	}
}

func TestPlural(t *testing.T) {
	f := ASCII()
	cases := []struct {
		n                float64
		singular, plural string
		want             string
	}{
		{1, "investment", "", "1 investment"},
		{0, "investment", "", "0 investments"},
		{2000, "investment", "", "2,000 investments"},
		{1, "project financed", "projects financed", "1 project financed"},
		{3, "project financed", "projects financed", "3 projects financed"},
	}
	for _, tc := range cases {
		if got := f.Plural(tc.n, tc.singular, tc.plural); got != tc.want {
			t.Fatalf("Plural(%v) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := PercentText(0.041, 1); got != "4.1" {
		t.Fatalf("PercentText: got %q", got)
	}
	if got := Percent(0.1234, 2); got != 12.34 {
		t.Fatalf("Percent: got %v", got)
	}
	if got := Share(25.0); got != "25%" {
		t.Fatalf("Share: got %q", got)
	}
	if got := Share(33.333); got != "33.3%" {
		t.Fatalf("Share: got %q", got)
	}
}

func TestDate(t *testing.T) {
	f := ASCII()
	if got := f.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); got != "1 March 2024" {
		t.Fatalf("Date: got %q", got)
	}
	if got := f.Date(time.Time{}); got != "" {
		t.Fatalf("zero date should render empty, got %q", got)
	}
}
