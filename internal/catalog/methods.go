package catalog

// Method IDs.
const (
	MethodAffirm           = "affirm"
	MethodAfterpayClearpay = "afterpay_clearpay"
	MethodKlarna           = "klarna"
)

// AffirmMethod returns the capability record for Affirm.
func AffirmMethod() *MethodCapability {
	return &MethodCapability{
		ID:            MethodAffirm,
		Title:         "Affirm",
		CapabilityKey: "affirm_payments",
		Reusable:      false,
		BNPL:          true,
		IconRef:       "payment-methods/affirm.svg",
		DomesticOnly:  true,
		Currencies:    []string{CurrencyUnitedStatesDollar, CurrencyCanadianDollar},
		Countries:     []string{CountryUnitedStates, CountryCanada},
		Limits: map[string]map[string]Limit{
			CurrencyUnitedStatesDollar: {
				CountryUnitedStates: {Min: 5000, Max: 3000000},
			},
			CurrencyCanadianDollar: {
				CountryCanada: {Min: 5000, Max: 3000000},
			},
		},
	}
}

// AfterpayClearpayMethod returns the capability record for Afterpay, branded
// Clearpay in the UK.
func AfterpayClearpayMethod() *MethodCapability {
	return &MethodCapability{
		ID:            MethodAfterpayClearpay,
		Title:         "Afterpay",
		CapabilityKey: "afterpay_clearpay_payments",
		Reusable:      false,
		BNPL:          true,
		IconRef:       "payment-methods/afterpay.svg",
		DomesticOnly:  true,
		Currencies: []string{
			CurrencyUnitedStatesDollar, CurrencyCanadianDollar,
			CurrencyPoundSterling, CurrencyAustralianDollar,
			CurrencyNewZealandDollar,
		},
		Countries: []string{
			CountryUnitedStates, CountryCanada, CountryUnitedKingdom,
			CountryAustralia, CountryNewZealand,
		},
		Limits: map[string]map[string]Limit{
			CurrencyUnitedStatesDollar: {
				CountryUnitedStates: {Min: 100, Max: 400000},
			},
			CurrencyCanadianDollar: {
				CountryCanada: {Min: 100, Max: 200000},
			},
			CurrencyPoundSterling: {
				CountryUnitedKingdom: {Min: 100, Max: 120000},
			},
			CurrencyAustralianDollar: {
				CountryAustralia: {Min: 100, Max: 200000},
			},
			CurrencyNewZealandDollar: {
				CountryNewZealand: {Min: 100, Max: 200000},
			},
		},
	}
}

// KlarnaMethod returns the capability record for Klarna. Klarna additionally
// supports cross-border transactions inside the EEA/UK/CH trade area when the
// buyer's country supports the store currency domestically.
func KlarnaMethod() *MethodCapability {
	return &MethodCapability{
		ID:            MethodKlarna,
		Title:         "Klarna",
		CapabilityKey: "klarna_payments",
		Reusable:      false,
		BNPL:          true,
		IconRef:       "payment-methods/klarna-pill.svg",
		DomesticOnly:  true,
		Currencies: []string{
			CurrencyUnitedStatesDollar, CurrencyPoundSterling, CurrencyEuro,
			CurrencyDanishKrone, CurrencyNorwegianKrone, CurrencySwedishKrona,
		},
		Countries: []string{
			CountryUnitedStates, CountryUnitedKingdom, CountryAustria,
			CountryGermany, CountryNetherlands, CountryBelgium, CountrySpain,
			CountryItaly, CountryIreland, CountryDenmark, CountryFinland,
			CountryNorway, CountrySweden, CountryFrance,
		},
		Limits: map[string]map[string]Limit{
			CurrencyUnitedStatesDollar: {
				CountryUnitedStates: {Min: 0, Max: 1000000},
			},
			CurrencyPoundSterling: {
				CountryUnitedKingdom: {Min: 0, Max: 1150000},
			},
			CurrencyEuro: {
				CountryAustria:     {Min: 1, Max: 1000000},
				CountryBelgium:     {Min: 1, Max: 1000000},
				CountryGermany:     {Min: 1, Max: 1000000},
				CountryNetherlands: {Min: 1, Max: 1500000},
				CountryFinland:     {Min: 0, Max: 1000000},
				CountrySpain:       {Min: 0, Max: 1000000},
				CountryIreland:     {Min: 0, Max: 400000},
				CountryItaly:       {Min: 0, Max: 1000000},
				CountryFrance:      {Min: 3500, Max: 400000},
			},
			CurrencyDanishKrone: {
				CountryDenmark: {Min: 100, Max: 100000000},
			},
			CurrencyNorwegianKrone: {
				CountryNorway: {Min: 0, Max: 100000000},
			},
			CurrencySwedishKrona: {
				CountrySweden: {Min: 0, Max: 15000000},
			},
		},
		TradeAreaCountries: klarnaTradeArea(),
	}
}
