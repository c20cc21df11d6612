package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/format"
)

func TestPaletteIsPositional(t *testing.T) {
	for i, c := range domain.Categories {
		if got := DefaultPalette.Color(c); got != DefaultPalette[i%len(DefaultPalette)] {
			t.Fatalf("category %v got colour %s", c, got)
		}
	}
	short := Palette{"#000", "#fff"}
	if short.Color(domain.CleanTransportation) != "#000" {
		t.Fatalf("expected palette to wrap around")
	}
	if Palette(nil).Color(domain.RenewableEnergy) != FallbackColor {
		t.Fatalf("empty palette should fall back")
	}
}

func TestForLabel(t *testing.T) {
	if got := DefaultPalette.ForLabel("Energy Efficiency"); got != "#37ebff" {
		t.Fatalf("unexpected colour %s", got)
	}
	if got := DefaultPalette.ForLabel("Pollution prevention & control"); got != "#fabe80" {
		t.Fatalf("unexpected colour %s", got)
	}
	if got := DefaultPalette.ForLabel("Something else"); got != FallbackColor {
		t.Fatalf("expected fallback colour, got %s", got)
	}
}

func TestIsDark(t *testing.T) {
	cases := map[string]bool{
		"#000000": true,
		"#000":    true,
		"0f172a":  true,
		"#ffffff": false,
		"#fff":    false,
		"":        false,
		"#12":     false,
		"#zzzzzz": false,
	}
	for hex, want := range cases {
		if got := IsDark(hex); got != want {
			t.Fatalf("IsDark(%q) = %v, want %v", hex, got, want)
		}
	}
	for _, hex := range DefaultPalette {
		want := hex == "#b191cb"
		if got := IsDark(hex); got != want {
			t.Fatalf("IsDark(%s) = %v, want %v", hex, got, want)
		}
	}
}

func TestContrast(t *testing.T) {
	dark := Contrast("#0f172a")
	if dark.Text != "#ffffff" || dark.Border != "rgba(255,255,255,.25)" {
		t.Fatalf("unexpected dark swatch %+v", dark)
	}
	light := Contrast(FallbackColor)
	if light.Text != "#111827" || light.Border != "rgba(17,24,39,.10)" {
		t.Fatalf("unexpected light swatch %+v", light)
	}
}

func TestPercentOfMax(t *testing.T) {
	label := format.ASCII().Compact
	spend := domain.CategorySpend{50_000, 100_000, 0, 0, 0, 2_000}

	got := DefaultPalette.PercentOfMax(spend, label)
	if got.Empty {
		t.Fatalf("unexpected empty chart")
	}
	if len(got.Rows) != domain.NumCategories {
		t.Fatalf("expected every category row, got %d", len(got.Rows))
	}
	widths := make([]float64, 0, len(got.Rows))
	for i, r := range got.Rows {
		if r.Category != domain.Categories[i] {
			t.Fatalf("row %d out of fixed order: %v", i, r.Category)
		}
		if r.Value > 0 && (r.Width < MinWidth || r.Width > 100) {
			t.Fatalf("row %d width %v outside [%v,100]", i, r.Width, MinWidth)
		}
		widths = append(widths, r.Width)
	}
	if diff := cmp.Diff([]float64{50, 100, 0, 0, 0, 10}, widths); diff != "" {
		t.Fatalf("widths mismatch (-want +got):\n%s", diff)
	}
	if got.Rows[1].Text != "£100k" {
		t.Fatalf("unexpected label %q", got.Rows[1].Text)
	}
}

func TestPercentOfMaxEmpty(t *testing.T) {
	got := DefaultPalette.PercentOfMax(domain.CategorySpend{}, format.ASCII().Compact)
	if !got.Empty || got.Message != EmptyMessage || len(got.Rows) != 0 {
		t.Fatalf("expected empty state, got %+v", got)
	}
}

func TestPercentOfTotal(t *testing.T) {
	spend := domain.CategorySpend{10, 0, 30, 0, 0, 10}
	got := DefaultPalette.PercentOfTotal(spend, 100)

	want := []string{"Clean transportation", "Renewable energy", "Living and natural resources"}
	var labels []string
	var sum float64
	for i, r := range got.Rows {
		labels = append(labels, r.Label)
		sum += r.Width
		if i > 0 && r.Width > got.Rows[i-1].Width {
			t.Fatalf("rows not descending at %d", i)
		}
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if got.Rows[0].Text != "30%" {
		t.Fatalf("unexpected share text %q", got.Rows[0].Text)
	}
	if math.Abs(sum-50) > 1e-9 {
		t.Fatalf("uncategorised spend should leave widths summing to 50, got %v", sum)
	}
}

func TestPercentOfTotalNeverExceedsWhole(t *testing.T) {
	spend := domain.CategorySpend{80, 80, 80}
	got := DefaultPalette.PercentOfTotal(spend, 100)
	var sum float64
	for _, r := range got.Rows {
		sum += r.Width
	}
	if sum > 100+1e-9 {
		t.Fatalf("widths sum to %v", sum)
	}
}

func TestPercentOfTotalEmpty(t *testing.T) {
	if got := DefaultPalette.PercentOfTotal(domain.CategorySpend{5}, 0); !got.Empty {
		t.Fatalf("zero total should be empty")
	}
	if got := DefaultPalette.PercentOfTotal(domain.CategorySpend{}, 100); !got.Empty {
		t.Fatalf("no positive categories should be empty")
	}
}
