package checkout

import "strings"

// Locales the payment processor's messaging library accepts with a region.
var processorLocales = map[string]struct{}{
	"bg-BG": {}, "cs-CZ": {}, "da-DK": {}, "de-DE": {}, "el-GR": {},
	"en-GB": {}, "en-US": {}, "es-ES": {}, "et-EE": {}, "fi-FI": {},
	"fr-CA": {}, "fr-FR": {}, "hr-HR": {}, "hu-HU": {}, "it-IT": {},
	"lt-LT": {}, "lv-LV": {}, "nb-NO": {}, "nl-NL": {}, "pl-PL": {},
	"pt-PT": {}, "ro-RO": {}, "sk-SK": {}, "sl-SI": {}, "sv-SE": {},
}

// ToProcessorLocale converts a host locale such as "de_DE" into the
// processor's "de-DE" form. Unknown regions fall back to the bare language
// code; anything unparseable falls back to "auto".
func ToProcessorLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return "auto"
	}

	parts := strings.SplitN(locale, "-", 2)
	lang := strings.ToLower(parts[0])
	if lang == "" {
		return "auto"
	}
	if len(parts) == 2 {
		candidate := lang + "-" + strings.ToUpper(parts[1])
		if _, ok := processorLocales[candidate]; ok {
			return candidate
		}
	}
	return lang
}
