package balancete

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with pt-BR digits.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// Percent is a percentage, 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return printer.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.Equal(0) {
		return "-"
	}
	if p > 0 {
		return "+" + p.String()
	}
	return p.String()
}

// Variance returns the horizontal analysis (AH%) of a value: its relative
// change from prior to current. It is not defined when prior is 0.
func Variance(current, prior float64) (Percent, bool) {
	if prior == 0 {
		return 0, false
	}
	return Percent((current - prior) / prior * 100), true
}

// Share returns the vertical analysis (AV%) of a value: its weight in total.
// It is not defined when total is 0.
func Share(value, total float64) (Percent, bool) {
	if total == 0 {
		return 0, false
	}
	return Percent(value / total * 100), true
}
