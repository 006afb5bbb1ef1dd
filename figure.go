package balancete

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Figure is a display-ready KPI value: either a number or a free text like "18,4%" or "N/D".
//
// The zero value is the number 0.
type Figure struct {
	Number float64
	Text   string
	IsText bool
}

// Num returns a numeric Figure.
func Num(v float64) Figure { return Figure{Number: v} }

// Text returns a textual Figure.
func Text(s string) Figure { return Figure{Text: s, IsText: true} }

// String returns the figure as displayed, numbers use pt-BR digits.
func (f Figure) String() string {
	if f.IsText {
		return f.Text
	}
	return printer.Sprintf("%.2f", f.Number)
}

func (f Figure) MarshalJSON() ([]byte, error) {
	if f.IsText {
		return json.Marshal(f.Text)
	}
	return []byte(strconv.FormatFloat(f.Number, 'f', -1, 64)), nil
}

func (f *Figure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Text(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("figure must be a number or a string: %w", err)
	}
	*f = Num(v)
	return nil
}
