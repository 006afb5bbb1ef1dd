package balancete

import "testing"

func TestBRL(t *testing.T) {
	testCases := []struct {
		v    float64
		want string
	}{
		{1234.56, "R$1.234,56"},
		{0, "R$0,00"},
		{1000000, "R$1.000.000,00"},
		{0.005, "R$0,01"},
		{-42.1, "-R$42,10"},
	}
	for _, tc := range testCases {
		if got := BRL(tc.v); got != tc.want {
			t.Errorf("BRL(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestSignedBRL(t *testing.T) {
	if got := SignedBRL(0); got != "-" {
		t.Errorf("SignedBRL(0) = %q, want %q", got, "-")
	}
	if got := SignedBRL(10); got != "+R$10,00" {
		t.Errorf("SignedBRL(10) = %q, want %q", got, "+R$10,00")
	}
}
