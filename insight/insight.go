// Package insight asks a text-generation service for a financial analysis of a dashboard.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/balancete"
	"github.com/sirupsen/logrus"
)

// Messages returned instead of an analysis.
const (
	FallbackError = "Erro ao gerar a análise. Verifique a chave de API configurada e tente novamente."
	FallbackEmpty = "Não foi possível gerar insights no momento."
)

// Generator produces a text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to a Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Requester turns a dashboard into a Markdown analysis.
//
// It implements balancete.Advisor.
type Requester struct {
	gen Generator
	log logrus.FieldLogger
}

var _ balancete.Advisor = (*Requester)(nil)

// NewRequester returns a Requester using gen.
func NewRequester(gen Generator, log logrus.FieldLogger) *Requester {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Requester{gen: gen, log: log}
}

// Insights asks the generator for an analysis of data, exactly once.
//
// It never fails: errors yield FallbackError, a blank answer yields FallbackEmpty.
func (r *Requester) Insights(ctx context.Context, data *balancete.DashboardData) string {
	text, err := r.gen.Generate(ctx, Prompt(data))
	if err != nil {
		r.log.WithError(err).Error("insight generation failed")
		return FallbackError
	}
	if strings.TrimSpace(text) == "" {
		r.log.Warn("insight generation returned an empty answer")
		return FallbackEmpty
	}
	return text
}

// Prompt returns the request sent to the generator for data.
//
// Totals come from the first total row of each side, 0 if there is none.
func Prompt(data *balancete.DashboardData) string {
	if data == nil {
		data = &balancete.DashboardData{}
	}
	s := balancete.Summarize(data)

	var b strings.Builder
	b.WriteString("Atue como um Controller Financeiro Sênior. Analise os dados do balanço patrimonial abaixo.\n\n")
	fmt.Fprintf(&b, "- Ativo Total (período atual): %s\n", balancete.BRL(s.Assets.Current))
	fmt.Fprintf(&b, "- Passivo Total (período atual): %s\n", balancete.BRL(s.Liabilities.Current))
	b.WriteString("\nIndicadores (atual vs anterior):\n")
	if len(data.KPIs) == 0 {
		b.WriteString("- nenhum indicador disponível\n")
	}
	for _, k := range data.KPIs {
		fmt.Fprintf(&b, "- %s: %s%s vs %s%s\n", k.Name, k.Current, k.Unit, k.Prior, k.Unit)
	}
	b.WriteString(`
Forneça:
1. Uma breve avaliação da saúde financeira da empresa.
2. Três pontos críticos ou de melhoria.
3. Uma conclusão estratégica curta.

Responda em português do Brasil, em Markdown, com tom profissional e direto.
`)
	return b.String()
}
