package balancete

import "time"

// FinancialItem is one line of a balance sheet, like "Caixa" or "Total do Ativo".
//
// IsTotal and IsGroupHeader are derived from the description at parse time,
// see IsTotalRow, IsAssetGroupHeader and IsLiabilityGroupHeader.
type FinancialItem struct {
	Description   string  `json:"description"`
	Current       float64 `json:"current"`
	Prior         float64 `json:"prior"`
	IsTotal       bool    `json:"isTotal"`
	IsGroupHeader bool    `json:"isGroupHeader"`
}

// Variance returns the item's horizontal analysis (AH%).
func (i FinancialItem) Variance() (Percent, bool) { return Variance(i.Current, i.Prior) }

// KPI is a named financial ratio with its value for both periods.
type KPI struct {
	Name        string `json:"name"`
	Current     Figure `json:"current"`
	Prior       Figure `json:"prior"`
	Description string `json:"description"`
	Unit        string `json:"unit,omitempty"`
}

// DashboardData is the whole working state of the dashboard.
//
// It is replaced wholesale on every upload and persisted as a single blob.
type DashboardData struct {
	Assets      []FinancialItem `json:"assets"`
	Liabilities []FinancialItem `json:"liabilities"`
	KPIs        []KPI           `json:"kpis"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// DefaultKPIs returns the fixed set of indicators shown on the dashboard.
//
// They are not derived from the uploaded sheet.
func DefaultKPIs() []KPI {
	return []KPI{
		{
			Name:        "Liquidez Corrente",
			Current:     Num(1.52),
			Prior:       Num(1.38),
			Description: "Capacidade de pagar as obrigações de curto prazo com o ativo circulante.",
		},
		{
			Name:        "Liquidez Seca",
			Current:     Num(1.14),
			Prior:       Num(1.02),
			Description: "Liquidez corrente desconsiderando os estoques.",
		},
		{
			Name:        "Endividamento Geral",
			Current:     Num(45.3),
			Prior:       Num(48.9),
			Description: "Participação de capital de terceiros no ativo total.",
			Unit:        "%",
		},
		{
			Name:        "Margem EBITDA",
			Current:     Text("18,4%"),
			Prior:       Text("16,9%"),
			Description: "Geração operacional de caixa sobre a receita líquida.",
		},
	}
}
