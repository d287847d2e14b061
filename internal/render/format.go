package render

import (
	"math"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// currencyGlyph prefixes every amount. Surfaces without the glyph substitute it.
const currencyGlyph = "₹"

const travellersKey = "For %d Travellers"

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder()
	_ = b.Set(language.English, travellersKey,
		plural.Selectf(1, "%d",
			"one", "For %d Traveller",
			"other", "For %d Travellers",
		))
	return message.NewPrinter(language.English, message.Catalog(b))
}

// FormatAmount groups thousands the way an English locale does
// ("150000" → "150,000") and keeps up to three fraction digits.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%v", int64(v))
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Travellers renders the pluralized traveller count, e.g. "For 2 Travellers".
func Travellers(n int) string {
	return printer.Sprintf(travellersKey, n)
}
