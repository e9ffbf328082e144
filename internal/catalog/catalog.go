// Package catalog holds the static per-method capability records for the BNPL
// payment methods the gateway knows about: identity, supported currencies and
// countries, per-(currency,country) amount bounds, and trade-area membership.
//
// The catalog is process-wide immutable configuration: it is built once at
// startup and safe to share across concurrent requests without locking.
// Consistency of the tables (min <= max, every limits country reachable via
// countries or the trade area) is a catalog-authoring concern enforced by the
// test suite, not validated at runtime.
package catalog

// Limit bounds a transaction amount in minor units, inclusive on both ends.
type Limit struct {
	Min int64
	Max int64
}

// MethodCapability describes everything the eligibility engine needs to know
// about one payment method.
type MethodCapability struct {
	// ID is the method identifier as used in enabled-method lists.
	ID string

	// Title is the customer-facing display name.
	Title string

	// CapabilityKey is the key under which the remote account status map
	// reports this method's activation state.
	CapabilityKey string

	// Reusable reports whether the method can be saved for future payments.
	// BNPL methods are single-use.
	Reusable bool

	// BNPL marks deferred/installment methods. Only BNPL methods flow
	// through the eligibility resolver.
	BNPL bool

	// IconRef points at the front-end asset for the method's logo.
	IconRef string

	// DomesticOnly restricts the method to transactions where the buyer's
	// country equals the store's country.
	DomesticOnly bool

	// Currencies and Countries are the plain support sets.
	Currencies []string
	Countries  []string

	// Limits maps currency -> country -> amount bounds in minor units.
	Limits map[string]map[string]Limit

	// TradeAreaCountries, when non-empty, names a set of countries that may
	// transact with each other when the store is itself a member and the
	// buyer's country supports the store currency domestically.
	TradeAreaCountries []string
}

// SupportsCurrency reports whether the method supports the given currency.
func (m *MethodCapability) SupportsCurrency(currency string) bool {
	for _, c := range m.Currencies {
		if c == currency {
			return true
		}
	}
	return false
}

// SupportsCountry reports whether the method supports the given country
// through its plain country set.
func (m *MethodCapability) SupportsCountry(country string) bool {
	for _, c := range m.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// InTradeArea reports whether the country is a member of the method's trade
// area. Always false for methods without one.
func (m *MethodCapability) InTradeArea(country string) bool {
	for _, c := range m.TradeAreaCountries {
		if c == country {
			return true
		}
	}
	return false
}

// LimitFor looks up the amount bounds for a (currency, country) pair.
func (m *MethodCapability) LimitFor(currency, country string) (Limit, bool) {
	byCountry, ok := m.Limits[currency]
	if !ok {
		return Limit{}, false
	}
	limit, ok := byCountry[country]
	return limit, ok
}

// Catalog is an ordered, immutable collection of method capabilities.
// Declaration order is preserved and drives display priority downstream.
type Catalog struct {
	methods []*MethodCapability
	byID    map[string]*MethodCapability
}

// New builds a catalog from the given methods, preserving order. Later
// duplicates of an ID are ignored.
func New(methods ...*MethodCapability) *Catalog {
	c := &Catalog{
		methods: make([]*MethodCapability, 0, len(methods)),
		byID:    make(map[string]*MethodCapability, len(methods)),
	}
	for _, m := range methods {
		if _, ok := c.byID[m.ID]; ok {
			continue
		}
		c.methods = append(c.methods, m)
		c.byID[m.ID] = m
	}
	return c
}

// Default returns the catalog of BNPL methods this gateway ships with.
func Default() *Catalog {
	return New(AffirmMethod(), AfterpayClearpayMethod(), KlarnaMethod())
}

// Lookup returns the capability record for a method ID.
func (c *Catalog) Lookup(id string) (*MethodCapability, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Methods returns the catalog's methods in enumeration order. The returned
// slice must not be mutated.
func (c *Catalog) Methods() []*MethodCapability {
	return c.methods
}
