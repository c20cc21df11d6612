package chart

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/totegamma/council-reports/internal/domain"
)

// FallbackColor marks a category that matches none of the fixed ones.
const FallbackColor = "#e5e7eb"

// darkLuminance is the WCAG relative luminance below which a background
// takes light text.
const darkLuminance = 0.45

// Palette assigns colours to categories by position.
type Palette []string

var DefaultPalette = Palette{"#f7d7e7", "#37ebff", "#f1ca8d", "#fabe80", "#b191cb", "#21e0f4"}

func (p Palette) Color(c domain.Category) string {
	if len(p) == 0 {
		return FallbackColor
	}
	return p[int(c)%len(p)]
}

// ForLabel colours a free-text category label, matching it to a fixed
// category by normalized key.
func (p Palette) ForLabel(label string) string {
	c, ok := domain.CategoryByLabel(label)
	if !ok {
		return FallbackColor
	}
	return p.Color(c)
}

// Luminance returns the WCAG relative luminance of a 3 or 6 digit hex
// colour, with or without a leading '#'.
func Luminance(hex string) (float64, bool) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 4 && len(h) != 7 {
		return 0, false
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return 0, false
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// IsDark reports whether hex is dark enough for white text. Unparsable
// colours are treated as light.
func IsDark(hex string) bool {
	l, ok := Luminance(hex)
	return ok && l < darkLuminance
}

// Swatch is a background with readable text and border colours.
type Swatch struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

func Contrast(background string) Swatch {
	if IsDark(background) {
		return Swatch{Background: background, Text: "#ffffff", Border: "rgba(255,255,255,.25)"}
	}
	return Swatch{Background: background, Text: "#111827", Border: "rgba(17,24,39,.10)"}
}
