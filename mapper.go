package balancete

import (
	"fmt"
	"strconv"
	"strings"
)

// Column layout of an imported sheet.
const (
	assetDescCol    = 0
	assetCurrentCol = 1
	assetPriorCol   = 2
	liabDescCol     = 4
	liabCurrentCol  = 5
	liabPriorCol    = 6
	headerRowCount  = 1
)

// MapRows converts a sheet into assets and liabilities.
//
// The first row is a header and is always skipped. Each following row yields
// an asset when column 0 is set, and independently a liability when column 4
// is set. Malformed values default to 0, MapRows never fails.
func MapRows(rows [][]any) (assets, liabilities []FinancialItem) {
	assets = []FinancialItem{}
	liabilities = []FinancialItem{}
	for i, row := range rows {
		if i < headerRowCount {
			continue
		}
		if desc := cellAt(row, assetDescCol); truthy(desc) {
			d := cellText(desc)
			assets = append(assets, FinancialItem{
				Description:   d,
				Current:       ParseMoney(cellAt(row, assetCurrentCol)),
				Prior:         ParseMoney(cellAt(row, assetPriorCol)),
				IsTotal:       IsTotalRow(d),
				IsGroupHeader: IsAssetGroupHeader(d),
			})
		}
		if desc := cellAt(row, liabDescCol); truthy(desc) {
			d := cellText(desc)
			liabilities = append(liabilities, FinancialItem{
				Description:   d,
				Current:       ParseMoney(cellAt(row, liabCurrentCol)),
				Prior:         ParseMoney(cellAt(row, liabPriorCol)),
				IsTotal:       IsTotalRow(d),
				IsGroupHeader: IsLiabilityGroupHeader(d),
			})
		}
	}
	return assets, liabilities
}

// cellAt returns the cell at col, or nil when the row is too short.
func cellAt(row []any, col int) any {
	if col < len(row) {
		return row[col]
	}
	return nil
}

// truthy reports whether a cell holds something: nil, "", 0 and false do not.
func truthy(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	return true
}

// cellText returns the text of a description cell.
func cellText(cell any) string {
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(cell)
}
