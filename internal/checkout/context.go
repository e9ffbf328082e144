// Package checkout builds the render-time payloads for BNPL messaging and
// express-checkout buttons: it normalizes product and cart amounts, resolves
// method eligibility, and computes the show/hide decisions the front-end acts
// on. Everything is request-scoped and side-effect free; remote data arrives
// pre-fetched in the request.
package checkout

import (
	"github.com/shopspring/decimal"

	"bnpl-gateway/internal/amount"
)

// BaseProductKey is the variations-map key for the base product itself.
const BaseProductKey = "base_product"

// Product is the host-supplied view of the product being rendered.
type Product struct {
	ID         string          `json:"id"`
	Price      decimal.Decimal `json:"price"`
	Taxable    bool            `json:"taxable"`
	VariantIDs []string        `json:"variantIds,omitempty"`
}

// Variant is one purchasable variation of a product.
type Variant struct {
	ID    string
	Price decimal.Decimal
}

// ProductSource resolves variant ids to their current data. Variants that no
// longer resolve are skipped without failing the whole build.
type ProductSource interface {
	Variant(id string) (Variant, bool)
}

// VariantMap is a ProductSource backed by a map, for hosts that inline the
// variant data into the request.
type VariantMap map[string]Variant

func (m VariantMap) Variant(id string) (Variant, bool) {
	v, ok := m[id]
	return v, ok
}

// Amount is one normalized price entry in the config payload.
type Amount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ProductAmounts is the normalized amount set for a product and its variants.
type ProductAmounts struct {
	// BasePrice is the base product's normalized amount. It is the amount
	// fed to the messaging-level eligibility check; variant amounts exist
	// only for the front-end's quantity/variation switching.
	BasePrice int64

	// Variations maps BaseProductKey and each resolvable variant id to its
	// normalized amount.
	Variations map[string]Amount
}

// BuildProductAmounts normalizes the base product plus its variant set under a
// single tax-policy decision. The policy depends on store settings and buyer
// status, not on the specific variant, so it is decided once by the caller.
func BuildProductAmounts(p Product, src ProductSource, n amount.Normalizer, policy amount.TaxPolicy, currency string) ProductAmounts {
	base := n.Normalize(p.Price, currency, policy)
	variations := make(map[string]Amount, len(p.VariantIDs)+1)
	variations[BaseProductKey] = Amount{Amount: base, Currency: currency}

	if src != nil {
		for _, id := range p.VariantIDs {
			variant, ok := src.Variant(id)
			if !ok {
				continue
			}
			variations[id] = Amount{
				Amount:   n.Normalize(variant.Price, currency, policy),
				Currency: currency,
			}
		}
	}

	return ProductAmounts{BasePrice: base, Variations: variations}
}
