package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/balancete"
	md "github.com/nao1215/markdown"
)

// View selects the sides of the balance sheet to render.
type View string

const (
	ViewAll         View = "all"
	ViewAssets      View = "assets"
	ViewLiabilities View = "liabilities"
)

// ParseView returns the view named s, ViewAll for unknown names.
func ParseView(s string) View {
	switch View(s) {
	case ViewAssets, ViewLiabilities:
		return View(s)
	}
	return ViewAll
}

// NoData is the document rendered when there is no dashboard.
const NoData = "Nenhum dado carregado. Importe uma planilha para começar."

// DashboardMarkdown renders the whole dashboard as a markdown document.
func DashboardMarkdown(data *balancete.DashboardData, view View) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balanço Patrimonial")
	if data == nil {
		doc.PlainText(NoData)
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Atualizado em %s", data.LastUpdated.Local().Format("02/01/2006 15:04")))

	s := balancete.Summarize(data)

	doc.H2("Resumo")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Atual", "Anterior", "AH%"},
		Rows: [][]string{
			totalRow("Ativo Total", s.Assets),
			totalRow("Passivo Total", s.Liabilities),
		},
	})
	if w := s.Warnings(); len(w) > 0 {
		doc.BulletList(w...)
	}

	if view != ViewLiabilities {
		doc.H2("Ativo")
		doc.Table(itemsTable(data.Assets, s.Assets))
	}
	if view != ViewAssets {
		doc.H2("Passivo e Patrimônio Líquido")
		doc.Table(itemsTable(data.Liabilities, s.Liabilities))
	}

	doc.H2("Indicadores")
	doc.Table(kpiTable(data.KPIs))

	return doc.String()
}

// InsightMarkdown renders an analysis under its own heading.
func InsightMarkdown(text string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Análise do Controller")
	doc.PlainText(text)
	return doc.String()
}

func totalRow(label string, t balancete.Total) []string {
	return []string{md.Bold(label), balancete.BRL(t.Current), balancete.BRL(t.Prior), variance(t.Variance())}
}

func itemsTable(items []balancete.FinancialItem, total balancete.Total) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Conta", "Atual", "Anterior", "AH%", "AV%"},
		Rows:   [][]string{},
	}
	for _, item := range items {
		label := item.Description
		if item.IsGroupHeader {
			label = strings.ToUpper(label)
		}
		cur, _, ok := total.Shares(item)
		share := "-"
		if ok {
			share = cur.String()
		}
		row := []string{
			label,
			balancete.BRL(item.Current),
			balancete.BRL(item.Prior),
			variance(item.Variance()),
			share,
		}
		if item.IsTotal {
			for i, cell := range row {
				row[i] = md.Bold(cell)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func kpiTable(kpis []balancete.KPI) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Indicador", "Atual", "Anterior", "Descrição"},
		Rows:      [][]string{},
	}
	for _, k := range kpis {
		table.Rows = append(table.Rows, []string{
			k.Name,
			k.Current.String() + k.Unit,
			k.Prior.String() + k.Unit,
			k.Description,
		})
	}
	return table
}

func variance(p balancete.Percent, ok bool) string {
	if !ok {
		return "-"
	}
	return p.SignedString()
}
