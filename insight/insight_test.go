package insight

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/etnz/balancete"
	"github.com/sirupsen/logrus"
)

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPrompt(t *testing.T) {
	data := &balancete.DashboardData{
		Assets: []balancete.FinancialItem{
			{Description: "Caixa", Current: 10, Prior: 5},
			{Description: "Total do Ativo", Current: 1234.56, Prior: 1000, IsTotal: true},
		},
		Liabilities: []balancete.FinancialItem{
			{Description: "Total do Passivo", Current: 2000, Prior: 1000, IsTotal: true},
		},
		KPIs:        balancete.DefaultKPIs(),
		LastUpdated: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got := Prompt(data)
	for _, want := range []string{
		"Controller Financeiro Sênior",
		"Ativo Total (período atual): R$1.234,56",
		"Passivo Total (período atual): R$2.000,00",
		"Liquidez Corrente: 1,52 vs 1,38",
		"Endividamento Geral: 45,30% vs 48,90%",
		"Margem EBITDA: 18,4% vs 16,9%",
		"Três pontos críticos",
		"Markdown",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() does not contain %q:\n%s", want, got)
		}
	}
}

func TestPromptWithoutTotals(t *testing.T) {
	for _, data := range []*balancete.DashboardData{nil, {}} {
		got := Prompt(data)
		if !strings.Contains(got, "Ativo Total (período atual): R$0,00") {
			t.Errorf("Prompt(%v) must default the totals to zero:\n%s", data, got)
		}
	}
}

func TestRequesterInsights(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		err    error
		want   string
	}{
		{"answer", "## Saúde financeira", nil, "## Saúde financeira"},
		{"error", "", errors.New("401 unauthorized"), FallbackError},
		{"empty", "", nil, FallbackEmpty},
		{"blank", " \n\t", nil, FallbackEmpty},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			gen := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
				calls++
				return tc.answer, tc.err
			})
			r := NewRequester(Observed(gen, quietLog()), quietLog())
			if got := r.Insights(context.Background(), &balancete.DashboardData{}); got != tc.want {
				t.Errorf("Insights() = %q, want %q", got, tc.want)
			}
			if calls != 1 {
				t.Errorf("the generator was called %d times, want exactly once", calls)
			}
		})
	}
}

func TestRequesterNilData(t *testing.T) {
	var prompt string
	r := NewRequester(GeneratorFunc(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "ok", nil
	}), quietLog())
	if got := r.Insights(context.Background(), nil); got != "ok" {
		t.Errorf("Insights(nil) = %q, want %q", got, "ok")
	}
	if prompt == "" {
		t.Errorf("Insights(nil) must still send a prompt")
	}
}
