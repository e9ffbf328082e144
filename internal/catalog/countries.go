package catalog

// ISO 3166-1 alpha-2 country codes used by the capability tables.
const (
	CountryAustria       = "AT"
	CountryAustralia     = "AU"
	CountryBelgium       = "BE"
	CountryBulgaria      = "BG"
	CountryCanada        = "CA"
	CountrySwitzerland   = "CH"
	CountryCyprus        = "CY"
	CountryCzechia       = "CZ"
	CountryGermany       = "DE"
	CountryDenmark       = "DK"
	CountryEstonia       = "EE"
	CountrySpain         = "ES"
	CountryFinland       = "FI"
	CountryFrance        = "FR"
	CountryUnitedKingdom = "GB"
	CountryGreece        = "GR"
	CountryCroatia       = "HR"
	CountryHungary       = "HU"
	CountryIreland       = "IE"
	CountryIceland       = "IS"
	CountryItaly         = "IT"
	CountryLiechtenstein = "LI"
	CountryLithuania     = "LT"
	CountryLuxembourg    = "LU"
	CountryLatvia        = "LV"
	CountryMalta         = "MT"
	CountryNetherlands   = "NL"
	CountryNorway        = "NO"
	CountryNewZealand    = "NZ"
	CountryPoland        = "PL"
	CountryPortugal      = "PT"
	CountryRomania       = "RO"
	CountrySweden        = "SE"
	CountrySlovenia      = "SI"
	CountrySlovakia      = "SK"
	CountryUnitedStates  = "US"
)

// EuropeanEconomicAreaCountries lists the EEA member states.
func EuropeanEconomicAreaCountries() []string {
	return []string{
		CountryAustria, CountryBelgium, CountryBulgaria, CountryCroatia,
		CountryCyprus, CountryCzechia, CountryDenmark, CountryEstonia,
		CountryFinland, CountryFrance, CountryGermany, CountryGreece,
		CountryHungary, CountryIceland, CountryIreland, CountryItaly,
		CountryLatvia, CountryLiechtenstein, CountryLithuania, CountryLuxembourg,
		CountryMalta, CountryNetherlands, CountryNorway, CountryPoland,
		CountryPortugal, CountryRomania, CountrySlovakia, CountrySlovenia,
		CountrySpain, CountrySweden,
	}
}

// klarnaTradeArea is the set of countries that may transact with each other
// through Klarna when they share a currency relationship with the store:
// the EEA plus the UK and Switzerland, which are not strictly in the EU.
func klarnaTradeArea() []string {
	return append(EuropeanEconomicAreaCountries(), CountrySwitzerland, CountryUnitedKingdom)
}
