package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency identifies how amounts of a location are displayed
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// FormatAmount renders an amount with the currency symbol, grouped thousands and two decimals
func (c Currency) FormatAmount(amount decimal.Decimal) string {
	return c.Symbol + groupThousands(amount.StringFixed(2))
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart := fixed, ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + fracPart
}
