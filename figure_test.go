package balancete

import (
	"encoding/json"
	"testing"
)

func TestFigureJSON(t *testing.T) {
	testCases := []struct {
		f    Figure
		json string
	}{
		{Num(1.52), `1.52`},
		{Num(0), `0`},
		{Text("18,4%"), `"18,4%"`},
		{Text(""), `""`},
	}
	for _, tc := range testCases {
		t.Run(tc.json, func(t *testing.T) {
			got, err := json.Marshal(tc.f)
			if err != nil {
				t.Fatalf("json.Marshal(%v) error: %v", tc.f, err)
			}
			if string(got) != tc.json {
				t.Errorf("json.Marshal(%v) = %s, want %s", tc.f, got, tc.json)
			}
			var back Figure
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("json.Unmarshal(%s) error: %v", got, err)
			}
			if back != tc.f {
				t.Errorf("json.Unmarshal(%s) = %#v, want %#v", got, back, tc.f)
			}
		})
	}
}

func TestFigureUnmarshalInvalid(t *testing.T) {
	var f Figure
	if err := json.Unmarshal([]byte(`{"a":1}`), &f); err == nil {
		t.Errorf("json.Unmarshal of an object into a Figure must fail")
	}
}

func TestFigureString(t *testing.T) {
	if got := Num(1.5).String(); got != "1,50" {
		t.Errorf("Num(1.5).String() = %q, want %q", got, "1,50")
	}
	if got := Text("N/D").String(); got != "N/D" {
		t.Errorf("Text(\"N/D\").String() = %q, want %q", got, "N/D")
	}
}
