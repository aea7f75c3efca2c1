package fiscal

import "github.com/shopspring/decimal"

// igvDivisor is 1 + the standard IGV rate (18%). Dividing a gross total by it
// yields the taxable base.
var igvDivisor = decimal.NewFromFloat(1.18)

// SplitTotal back-computes the taxable base and IGV from a gross total:
// base = round(total/1.18, 2), igv = round(total-base, 2). The two parts
// reconstruct the total within one cent. This is the documented approximation
// used whenever a document carries only a total.
func SplitTotal(total decimal.Decimal) (base, igv decimal.Decimal) {
	base = total.Div(igvDivisor).Round(2)
	igv = total.Sub(base).Round(2)
	return base, igv
}
