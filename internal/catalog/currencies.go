package catalog

// ISO 4217 currency codes used by the capability tables.
const (
	CurrencyAustralianDollar   = "AUD"
	CurrencyCanadianDollar     = "CAD"
	CurrencyDanishKrone        = "DKK"
	CurrencyEuro               = "EUR"
	CurrencyNewZealandDollar   = "NZD"
	CurrencyNorwegianKrone     = "NOK"
	CurrencyPoundSterling      = "GBP"
	CurrencySwedishKrona       = "SEK"
	CurrencyUnitedStatesDollar = "USD"
)
