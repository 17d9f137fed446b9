package currency

import (
	"strings"

	"github.com/whiteboardproductions/site/go/internal/models"
	"golang.org/x/text/language"
)

// Hints are the client-side signals used when the geo lookup is unavailable.
type Hints struct {
	// Language is a BCP 47 tag or a full Accept-Language header value.
	Language string
	// TimeZone is an IANA zone name such as "Asia/Kolkata".
	TimeZone string
}

var inrRegions = map[string]bool{
	"IN": true,
	"PK": true,
	"BD": true,
}

var inrTimeZones = []string{"Kolkata", "Calcutta", "Karachi", "Dhaka"}

// ForCountry maps an ISO 3166 country code to the currency the site bills in.
func ForCountry(code string) models.Currency {
	if inrRegions[strings.ToUpper(strings.TrimSpace(code))] {
		return models.CurrencyINR
	}
	return models.CurrencyUSD
}

// Guess applies the local fallback: an explicit IN/PK/BD region on the
// preferred language, or a time zone in one of those countries, means INR.
func Guess(h Hints) models.Currency {
	if region, ok := explicitRegion(h.Language); ok && inrRegions[region] {
		return models.CurrencyINR
	}
	for _, city := range inrTimeZones {
		if strings.Contains(strings.ToLower(h.TimeZone), strings.ToLower(city)) {
			return models.CurrencyINR
		}
	}
	return models.CurrencyUSD
}

func explicitRegion(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	region, conf := tags[0].Region()
	if conf != language.Exact {
		return "", false
	}
	return region.String(), true
}
