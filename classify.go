package balancete

import "strings"

// Row classification relies on the description only, with plain substring
// matching on the lower-cased text. Accents are not normalized: "liquido"
// does not match "líquido".

// IsTotalRow reports whether a description denotes a total or subtotal line.
func IsTotalRow(desc string) bool {
	return strings.Contains(strings.ToLower(desc), "total")
}

// IsAssetGroupHeader reports whether an asset description denotes a section heading.
func IsAssetGroupHeader(desc string) bool {
	return strings.Contains(strings.ToLower(desc), "circulante")
}

// IsLiabilityGroupHeader reports whether a liability description denotes a section heading.
func IsLiabilityGroupHeader(desc string) bool {
	d := strings.ToLower(desc)
	return strings.Contains(d, "circulante") || strings.Contains(d, "líquido")
}
