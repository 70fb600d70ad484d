package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the currency's display format, rounded to
// the currency's minor unit. Unknown currency codes fall back to two
// decimals with the code as suffix
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", decimal.NewFromFloat(amount).StringFixed(2), currency)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}
