package summary

import (
	"github.com/whiteboardproductions/site/go/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printers = map[models.Currency]*message.Printer{
	models.CurrencyINR: message.NewPrinter(language.MustParse("en-IN")),
	models.CurrencyUSD: message.NewPrinter(language.AmericanEnglish),
}

// FormatPrice renders a whole-unit amount with the currency symbol and the
// digit grouping customary for that currency.
func FormatPrice(amount int64, c models.Currency) string {
	p, ok := printers[c]
	if !ok {
		p = printers[models.CurrencyUSD]
	}
	return c.Symbol() + p.Sprintf("%d", amount)
}
