package amount

import "github.com/shopspring/decimal"

// Currencies quoted without a minor unit. Everything else uses two decimals.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// MinorUnitExponent returns the number of decimal places for a currency.
// Unsupported currencies default to two decimals.
func MinorUnitExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return 0
	}
	return 2
}

// Normalizer converts major-unit prices into minor-unit integers. Rate is the
// effective tax rate applied by the inclusive/exclusive policies, e.g. 0.19
// for 19% VAT. The zero value normalizes with a zero tax rate.
type Normalizer struct {
	Rate decimal.Decimal
}

// Normalize converts a non-negative major-unit price into minor units under
// the given tax policy, rounding half-up to the currency's precision. It never
// fails: unknown currencies round to two decimals.
func (n Normalizer) Normalize(price decimal.Decimal, currency string, policy TaxPolicy) int64 {
	one := decimal.NewFromInt(1)
	switch policy {
	case TaxPolicyExclusive:
		price = price.Div(one.Add(n.Rate))
	case TaxPolicyInclusive:
		price = price.Mul(one.Add(n.Rate))
	}

	// Round is half away from zero, which is half-up for the non-negative
	// prices this domain deals in.
	return price.Shift(MinorUnitExponent(currency)).Round(0).IntPart()
}
