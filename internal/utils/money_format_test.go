package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1250.50", FormatMoney(decimal.RequireFromString("1250.5"), ""))
	assert.Equal(t, "$12.35", FormatMoney(decimal.RequireFromString("12.345"), "USD"))
	assert.Equal(t, "€3.00", FormatMoney(decimal.NewFromInt(3), "EUR"))
	assert.Equal(t, "10.00 CHF", FormatMoney(decimal.NewFromInt(10), "CHF"))
}
