// Package format renders amounts, counts and dates for display.
//
// A Formatter built with New groups digits with the locale's rules via
// golang.org/x/text. ASCII(), or a nil *Formatter, falls back to plain
// comma grouping.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	symbol          = "£"
	defaultDecimals = 2
	dateLayout      = "2 January 2006"
)

type Formatter struct {
	printer *message.Printer
}

func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// ForLocale builds a formatter from a BCP 47 name, falling back to ASCII.
func ForLocale(name string) *Formatter {
	tag, err := language.Parse(name)
	if err != nil {
		return ASCII()
	}
	return New(tag)
}

func ASCII() *Formatter {
	return &Formatter{}
}

func (f *Formatter) group(n int64) string {
	if f == nil || f.printer == nil {
		return humanize.Comma(n)
	}
	return f.printer.Sprintf("%d", n)
}

// Compact renders "£1.5k", "£2.35m" or "£3.2bn" with two decimal places
// for millions and billions.
func (f *Formatter) Compact(v float64) string {
	return f.CompactN(v, defaultDecimals)
}

// CompactN is Compact with dp decimal places. Thousands always use one.
func (f *Formatter) CompactN(v float64, dp int) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(finite(v))
	switch {
	case abs >= 1e9:
		return sign + symbol + trimmed(round(abs/1e9, dp)) + "bn"
	case abs >= 1e6:
		return sign + symbol + trimmed(round(abs/1e6, dp)) + "m"
	case abs >= 1e3:
		return sign + symbol + trimmed(round(abs/1e3, 1)) + "k"
	default:
		if round(abs, dp) == 0 {
			sign = ""
		}
		return sign + symbol + trimmed(round(abs, dp))
	}
}

// Currency renders whole pounds, "£1,234".
func (f *Formatter) Currency(v float64) string {
	n := int64(math.Round(finite(v)))
	if n < 0 {
		return "-" + symbol + f.group(-n)
	}
	return symbol + f.group(n)
}

// CurrencyPence renders pounds and pence, "£1,234.50".
func (f *Formatter) CurrencyPence(v float64) string {
	v = finite(v)
	pence := int64(math.Round(math.Abs(v) * 100))
	sign := ""
	if v < 0 && pence != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, f.group(pence/100), pence%100)
}

// Int renders a rounded, grouped integer.
func (f *Formatter) Int(v float64) string {
	return f.group(int64(math.Round(finite(v))))
}

// Plural renders "1 investment" or "2,000 investments". An empty plural
// defaults to singular + "s".
func (f *Formatter) Plural(count float64, singular, plural string) string {
	n := int64(math.Round(finite(count)))
	if n == 1 {
		return "1 " + singular
	}
	if plural == "" {
		plural = singular + "s"
	}
	return f.group(n) + " " + plural
}

// Date renders a long British date, "2 January 2006".
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// Percent converts a decimal rate to a percentage rounded to dp places.
func Percent(dec float64, dp int) float64 {
	return round(finite(dec)*100, dp)
}

// PercentText is Percent rendered without trailing zeros, 0.041 -> "4.1".
func PercentText(dec float64, dp int) string {
	return trimmed(Percent(dec, dp))
}

// Share renders a percentage value to one decimal place, dropping ".0".
func Share(pct float64) string {
	return trimmed(round(finite(pct), 1)) + "%"
}

func round(v float64, dp int) float64 {
	if dp < 0 {
		dp = 0
	}
	p := math.Pow(10, float64(dp))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

func trimmed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
