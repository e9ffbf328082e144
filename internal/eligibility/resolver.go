// Package eligibility filters an enabled-method list down to the BNPL methods
// that are geographically, currency-wise, and amount-wise eligible for one
// transaction context. All functions are pure and fail closed: missing or
// malformed data excludes a method, it never raises an error.
package eligibility

import "bnpl-gateway/internal/catalog"

// StatusActive is the only capability status the resolver trusts.
const StatusActive = "active"

// CapabilityStatus is the remotely reported activation state of one payment
// capability for the merchant account.
type CapabilityStatus struct {
	Status string `json:"status"`
}

// StatusMap maps capability keys to their remotely reported status. It is
// fetched out-of-band by the host and passed in as a plain value.
type StatusMap map[string]CapabilityStatus

// LineItem is one priced entry in the cart.
type LineItem struct {
	ID               string `json:"id"`
	AmountMinorUnits int64  `json:"amountMinorUnits"`
}

// TransactionContext is the request-scoped snapshot of the transaction the
// resolver evaluates against. Derived once per request, never mutated.
type TransactionContext struct {
	Currency            string     `json:"currency"`
	StoreCountry        string     `json:"storeCountry"`
	BillingCountry      string     `json:"billingCountry"`
	CartTotalMinorUnits int64      `json:"cartTotalMinorUnits"`
	Items               []LineItem `json:"items,omitempty"`
}

// EffectiveCountry is the billing country when known, else the store country.
func (c TransactionContext) EffectiveCountry() string {
	if c.BillingCountry != "" {
		return c.BillingCountry
	}
	return c.StoreCountry
}

// FilterActive reduces enabled to the BNPL methods whose capability status is
// exactly "active", preserving order and collapsing duplicates. Unknown method
// ids are skipped: the catalog is the source of truth for what can exist.
func FilterActive(enabled []string, cat *catalog.Catalog, statuses StatusMap) []string {
	out := make([]string, 0, len(enabled))
	seen := make(map[string]struct{}, len(enabled))

	for _, id := range enabled {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		method, ok := cat.Lookup(id)
		if !ok || !method.BNPL {
			continue
		}
		status, ok := statuses[method.CapabilityKey]
		if !ok || status.Status != StatusActive {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Resolve returns the subset of enabled methods eligible for the transaction,
// in the original order. The amount is caller-supplied rather than taken from
// the context because messaging-level checks use the per-product price while
// button-level checks use the cart total.
func Resolve(enabled []string, cat *catalog.Catalog, statuses StatusMap, txn TransactionContext, amountMinorUnits int64) []string {
	out := make([]string, 0, len(enabled))

	for _, id := range FilterActive(enabled, cat, statuses) {
		method, _ := cat.Lookup(id)
		if !geographicallyEligible(method, txn) {
			continue
		}
		limit, ok := method.LimitFor(txn.Currency, txn.EffectiveCountry())
		if !ok || amountMinorUnits < limit.Min || amountMinorUnits > limit.Max {
			continue
		}
		out = append(out, id)
	}
	return out
}

// geographicallyEligible applies the country/currency rules for one method.
//
// The trade-area exception: when the store itself sits inside the method's
// trade area, any trade-area billing country whose domestic currency matches
// the transaction currency is eligible, even if it is absent from the plain
// country set. The limits table doubles as the domestic-currency lookup.
func geographicallyEligible(method *catalog.MethodCapability, txn TransactionContext) bool {
	country := txn.EffectiveCountry()

	if len(method.TradeAreaCountries) > 0 && method.InTradeArea(txn.StoreCountry) {
		if !method.InTradeArea(country) {
			return false
		}
		_, supportsStoreCurrency := method.LimitFor(txn.Currency, country)
		return supportsStoreCurrency
	}

	if !method.SupportsCurrency(txn.Currency) || !method.SupportsCountry(country) {
		return false
	}
	if method.DomesticOnly && country != txn.StoreCountry {
		return false
	}
	return true
}

// AnySupportsCountry reports whether any of the methods supports the
// country+currency pair, ignoring amounts. This backs the front-end's
// shouldInitialize flag.
func AnySupportsCountry(methods []string, cat *catalog.Catalog, country, currency string) bool {
	for _, id := range methods {
		method, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		if _, ok := method.LimitFor(currency, country); ok {
			return true
		}
	}
	return false
}

// AnyAvailableForAmount reports whether any of the methods supports the
// country+currency pair with the amount inside its bounds. This backs the
// front-end's shouldShowForAmount flag.
func AnyAvailableForAmount(methods []string, cat *catalog.Catalog, country, currency string, amountMinorUnits int64) bool {
	for _, id := range methods {
		method, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		limit, ok := method.LimitFor(currency, country)
		if !ok {
			continue
		}
		if amountMinorUnits >= limit.Min && amountMinorUnits <= limit.Max {
			return true
		}
	}
	return false
}
