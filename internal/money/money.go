// Package money holds the arithmetic and formatting used for product revenue.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Revenue returns sales * price without binary floating point drift.
func Revenue(price float64, sales int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(sales)))
}

// Sum adds up the given amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Format renders an amount with two decimals and digit grouping, e.g. 1,234.50.
// Only the whole part goes through the printer; the cents come from the decimal itself.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		// beyond uint64, left ungrouped
		return sign + whole + "." + cents
	}
	return sign + printer.Sprintf("%d", n) + "." + cents
}
