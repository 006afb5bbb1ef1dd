package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/balancete"
)

func sampleData() *balancete.DashboardData {
	return &balancete.DashboardData{
		Assets: []balancete.FinancialItem{
			{Description: "Ativo Circulante", Current: 600, Prior: 500, IsGroupHeader: true},
			{Description: "Caixa", Current: 250, Prior: 200},
			{Description: "Total do Ativo", Current: 1000, Prior: 800, IsTotal: true},
		},
		Liabilities: []balancete.FinancialItem{
			{Description: "Fornecedores", Current: 40, Prior: 0},
		},
		KPIs:        balancete.DefaultKPIs(),
		LastUpdated: time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
	}
}

func TestDashboardMarkdown(t *testing.T) {
	got := DashboardMarkdown(sampleData(), ViewAll)
	for _, want := range []string{
		"# Balanço Patrimonial",
		"## Resumo",
		"R$1.000,00",
		"+25,00%",          // AH% of the asset total
		"ATIVO CIRCULANTE", // group header
		"**Total do Ativo**",
		"25,00%", // AV% of Caixa
		"## Passivo e Patrimônio Líquido",
		"Nenhuma linha de total encontrada no passivo",
		"## Indicadores",
		"Liquidez Corrente",
		"45,30%",
		"18,4%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestDashboardMarkdownViews(t *testing.T) {
	testCases := []struct {
		view          View
		assets, liabs bool
	}{
		{ViewAll, true, true},
		{ViewAssets, true, false},
		{ViewLiabilities, false, true},
	}
	for _, tc := range testCases {
		t.Run(string(tc.view), func(t *testing.T) {
			got := DashboardMarkdown(sampleData(), tc.view)
			if has := strings.Contains(got, "## Ativo\n"); has != tc.assets {
				t.Errorf("assets section present = %v, want %v", has, tc.assets)
			}
			if has := strings.Contains(got, "## Passivo e Patrimônio Líquido"); has != tc.liabs {
				t.Errorf("liabilities section present = %v, want %v", has, tc.liabs)
			}
		})
	}
}

func TestDashboardMarkdownNoData(t *testing.T) {
	got := DashboardMarkdown(nil, ViewAll)
	if !strings.Contains(got, NoData) {
		t.Errorf("DashboardMarkdown(nil) = %q, want the no data message", got)
	}
	if strings.Contains(got, "Resumo") {
		t.Errorf("DashboardMarkdown(nil) must not render a summary")
	}
}

func TestParseView(t *testing.T) {
	for s, want := range map[string]View{
		"":            ViewAll,
		"all":         ViewAll,
		"assets":      ViewAssets,
		"liabilities": ViewLiabilities,
		"other":       ViewAll,
	} {
		if got := ParseView(s); got != want {
			t.Errorf("ParseView(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML(InsightMarkdown("**Liquidez** adequada.\n\n<script>alert(1)</script>"))
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if !strings.Contains(got, "<strong>Liquidez</strong>") {
		t.Errorf("HTML() = %q, want bold rendered", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("HTML() = %q, raw HTML must not be rendered", got)
	}
}
