package web

import (
	"html/template"
	"strings"

	"github.com/etnz/balancete"
	"github.com/etnz/balancete/renderer"
)

// page is the data of the dashboard template. Every amount is already formatted.
type page struct {
	HasData     bool
	View        renderer.View
	Message     string
	LastUpdated string
	Warnings    []string
	Totals      []totalLine
	Assets      []itemLine
	Liabilities []itemLine
	KPIs        []kpiLine
	Insight     template.HTML
	Loading     bool
}

type totalLine struct {
	Label, Current, Prior, Variance string
}

type itemLine struct {
	Description, Current, Prior, Variance, Share string
	IsTotal, IsGroupHeader                       bool
}

type kpiLine struct {
	Name, Current, Prior, Description string
}

func (s *Server) newPage(view renderer.View, msg string) page {
	p := page{
		View:    view,
		Message: msg,
		Loading: s.dash.Loading(),
	}
	data := s.dash.Data()
	if data == nil {
		return p
	}
	sum := balancete.Summarize(data)

	p.HasData = true
	p.LastUpdated = data.LastUpdated.Local().Format("02/01/2006 15:04")
	p.Warnings = sum.Warnings()
	p.Totals = []totalLine{
		newTotalLine("Ativo Total", sum.Assets),
		newTotalLine("Passivo Total", sum.Liabilities),
	}
	if view != renderer.ViewLiabilities {
		p.Assets = newItemLines(data.Assets, sum.Assets)
	}
	if view != renderer.ViewAssets {
		p.Liabilities = newItemLines(data.Liabilities, sum.Liabilities)
	}
	for _, k := range data.KPIs {
		p.KPIs = append(p.KPIs, kpiLine{
			Name:        k.Name,
			Current:     k.Current.String() + k.Unit,
			Prior:       k.Prior.String() + k.Unit,
			Description: k.Description,
		})
	}

	if text := s.dash.Insight(); text != "" {
		html, err := renderer.HTML(text)
		if err != nil {
			s.log.WithError(err).Warn("cannot render insight as HTML")
			html = template.HTMLEscapeString(text)
		}
		// goldmark does not render raw HTML from the source.
		p.Insight = template.HTML(html)
	}
	return p
}

func newTotalLine(label string, t balancete.Total) totalLine {
	return totalLine{
		Label:    label,
		Current:  balancete.BRL(t.Current),
		Prior:    balancete.BRL(t.Prior),
		Variance: percent(t.Variance()),
	}
}

func newItemLines(items []balancete.FinancialItem, total balancete.Total) []itemLine {
	lines := make([]itemLine, 0, len(items))
	for _, item := range items {
		cur, _, ok := total.Shares(item)
		share := "-"
		if ok {
			share = cur.String()
		}
		desc := item.Description
		if item.IsGroupHeader {
			desc = strings.ToUpper(desc)
		}
		lines = append(lines, itemLine{
			Description:   desc,
			Current:       balancete.BRL(item.Current),
			Prior:         balancete.BRL(item.Prior),
			Variance:      percent(item.Variance()),
			Share:         share,
			IsTotal:       item.IsTotal,
			IsGroupHeader: item.IsGroupHeader,
		})
	}
	return lines
}

func percent(p balancete.Percent, ok bool) string {
	if !ok {
		return "-"
	}
	return p.SignedString()
}
