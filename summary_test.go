package balancete

import "testing"

func TestTotalOf(t *testing.T) {
	testCases := []struct {
		name  string
		items []FinancialItem
		want  Total
	}{
		{
			name: "first match wins",
			items: []FinancialItem{
				{Description: "Caixa", Current: 100, Prior: 90},
				{Description: "Total do Ativo", Current: 1000, Prior: 900, IsTotal: true},
				{Description: "Total Geral", Current: 5000, Prior: 4000, IsTotal: true},
			},
			want: Total{Current: 1000, Prior: 900, Found: true},
		},
		{
			name:  "no total row",
			items: []FinancialItem{{Description: "Caixa", Current: 100, Prior: 90}},
			want:  Total{},
		},
		{
			name: "empty",
			want: Total{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalOf(tc.items); got != tc.want {
				t.Errorf("TotalOf() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	data := &DashboardData{
		Assets: []FinancialItem{
			{Description: "Total do Ativo", Current: 1000, Prior: 800, IsTotal: true},
		},
	}
	s := Summarize(data)
	if !s.Assets.Found || s.Assets.Current != 1000 {
		t.Errorf("Summarize().Assets = %+v, want the total row", s.Assets)
	}
	if s.Liabilities.Found {
		t.Errorf("Summarize().Liabilities = %+v, want not found", s.Liabilities)
	}
	if v, ok := s.Assets.Variance(); !ok || !v.Equal(25) {
		t.Errorf("Assets.Variance() = %v, %v, want 25, true", v, ok)
	}
	if w := s.Warnings(); len(w) != 1 {
		t.Errorf("Warnings() = %q, want one warning for the missing liability total", w)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want an empty summary", got)
	}
}

func TestTotalShares(t *testing.T) {
	total := Total{Current: 1000, Prior: 500, Found: true}
	cur, prior, ok := total.Shares(FinancialItem{Current: 250, Prior: 50})
	if !ok || !cur.Equal(25) || !prior.Equal(10) {
		t.Errorf("Shares() = %v, %v, %v, want 25, 10, true", cur, prior, ok)
	}
	if _, _, ok := (Total{}).Shares(FinancialItem{Current: 1}); ok {
		t.Errorf("Shares() on a zero total must not be defined")
	}
}
