package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals and a leading currency symbol.
// Unknown currency codes are appended instead, e.g. "1250.00 CHF".
func FormatMoney(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)
	switch currency {
	case "", "USD":
		return "$" + fixed
	case "EUR":
		return "€" + fixed
	case "GBP":
		return "£" + fixed
	}
	return fixed + " " + currency
}
