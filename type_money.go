package balancete

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency used for display.
const Currency = money.BRL

// BRL returns the Brazilian Real representation of v, like "R$1.234,56".
func BRL(v float64) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, Currency).Currency()
	dec := decimal.NewFromFloat(v).Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedBRL is BRL with an explicit sign, 0 is represented as "-".
func SignedBRL(v float64) string {
	switch {
	case v == 0:
		return "-"
	case v > 0:
		return "+" + BRL(v)
	}
	return BRL(v)
}

var moneyStripper = strings.NewReplacer("R$", "", ".", "")

// ParseMoney converts a raw cell value into a number.
//
// Numbers are returned unchanged and empty values yield 0. Text is read with
// the Brazilian convention: the currency symbol, the thousands separators and
// the spaces are removed, then the decimal comma becomes a period. Anything
// that still cannot be parsed yields 0.
func ParseMoney(cell any) float64 {
	switch v := cell.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	case decimal.Decimal:
		return v.InexactFloat64()
	case bool:
		// a spreadsheet boolean is not an amount
		return 0
	case string:
		return parseMoneyText(v)
	}
	return 0
}

func parseMoneyText(s string) float64 {
	s = moneyStripper.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
