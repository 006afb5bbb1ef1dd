package balancete

// Total is the authoritative total of one side of the balance sheet.
type Total struct {
	Current float64 `json:"current"`
	Prior   float64 `json:"prior"`
	// Found is false when no total row exists, Current and Prior are then 0.
	Found bool `json:"found"`
}

// Variance returns the total's horizontal analysis (AH%).
func (t Total) Variance() (Percent, bool) { return Variance(t.Current, t.Prior) }

// Shares returns the vertical analysis (AV%) of an item, for both periods,
// relative to the side total.
func (t Total) Shares(item FinancialItem) (current, prior Percent, ok bool) {
	current, okc := Share(item.Current, t.Current)
	prior, okp := Share(item.Prior, t.Prior)
	return current, prior, okc && okp
}

// Summary holds the values derived from a DashboardData.
//
// It is never stored, always recompute it with Summarize.
type Summary struct {
	Assets      Total `json:"assets"`
	Liabilities Total `json:"liabilities"`
}

// Warnings lists the data quality issues of the summary, in human readable form.
func (s Summary) Warnings() []string {
	var w []string
	if !s.Assets.Found {
		w = append(w, "Nenhuma linha de total encontrada no ativo, total considerado R$0,00.")
	}
	if !s.Liabilities.Found {
		w = append(w, "Nenhuma linha de total encontrada no passivo, total considerado R$0,00.")
	}
	return w
}

// TotalOf returns the first total row of items. The first match wins, other
// total rows are ignored.
func TotalOf(items []FinancialItem) Total {
	for _, item := range items {
		if item.IsTotal {
			return Total{Current: item.Current, Prior: item.Prior, Found: true}
		}
	}
	return Total{}
}

// Summarize computes the summary of data. A nil data has an empty summary.
func Summarize(data *DashboardData) Summary {
	if data == nil {
		return Summary{}
	}
	return Summary{
		Assets:      TotalOf(data.Assets),
		Liabilities: TotalOf(data.Liabilities),
	}
}
