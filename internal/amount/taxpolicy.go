// Package amount converts display prices into canonical minor-unit integers
// under the merchant's tax-display regime. Everything here is pure: the policy
// selection and the arithmetic are separate functions so each is testable on
// its own.
package amount

// TaxPolicy selects which price variant the normalizer produces.
type TaxPolicy int

const (
	// TaxPolicyNone passes the price through unchanged: tax is disabled,
	// the item is not taxable, or the stored price already matches the
	// operative display rule.
	TaxPolicyNone TaxPolicy = iota

	// TaxPolicyExclusive strips tax from a tax-inclusive price. Applies
	// when stored prices include tax but the display rule or a buyer VAT
	// exemption requires exclusive pricing.
	TaxPolicyExclusive

	// TaxPolicyInclusive adds tax onto an exclusive base price. Applies
	// when the display rule mandates tax-inclusive pricing and the buyer
	// is not VAT-exempt.
	TaxPolicyInclusive
)

func (p TaxPolicy) String() string {
	switch p {
	case TaxPolicyExclusive:
		return "exclusive"
	case TaxPolicyInclusive:
		return "inclusive"
	default:
		return "none"
	}
}

// TaxSettings captures the merchant-level tax facts the policy depends on.
// These are store settings, not item properties: one policy decision covers a
// base product and all of its variants.
type TaxSettings struct {
	// Enabled is the global tax flag.
	Enabled bool `json:"enabled"`

	// PricesIncludeTax reports whether stored prices are tax-inclusive.
	PricesIncludeTax bool `json:"pricesIncludeTax"`

	// DisplayIncludesTax reports whether the shop displays prices
	// inclusive of tax.
	DisplayIncludesTax bool `json:"displayIncludesTax"`
}

// SelectTaxPolicy decides which normalization variant applies for one context.
// Branch order mirrors the precedence of the display rules: the exclusive
// override (VAT exemption or an exclusive display rule over inclusive stored
// prices) wins over the inclusive display mandate.
func SelectTaxPolicy(settings TaxSettings, taxable, vatExempt bool) TaxPolicy {
	if !settings.Enabled || !taxable {
		return TaxPolicyNone
	}
	if settings.PricesIncludeTax && (!settings.DisplayIncludesTax || vatExempt) {
		return TaxPolicyExclusive
	}
	if settings.DisplayIncludesTax && !vatExempt && !settings.PricesIncludeTax {
		// Stored prices that already include tax need no adjustment under
		// an inclusive display rule.
		return TaxPolicyInclusive
	}
	return TaxPolicyNone
}
