// Package format renders engine output as Brazilian Real text.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/fine-loan-simulator/pkg/utils"
)

const (
	currencySymbol = "R$\u00a0"
	groupSeparator = "."
	decimalMark    = ","
)

// FormatCurrency renders value as BRL with two decimal places, e.g. "R$ 1.234,56"
// with a no-break space after the symbol
func FormatCurrency(value float64) string {
	return localize(value, currencySymbol, "")
}

// FormatPercentage renders a percentage number, e.g. 50 -> "50,00%"
func FormatPercentage(value float64) string {
	return localize(value, "", "%")
}

// localize rounds half away from zero to cents and applies pt-BR separators
func localize(value float64, prefix, suffix string) string {
	if !utils.IsFinite(value) {
		// decimal cannot represent NaN or Inf
		return prefix + strconv.FormatFloat(value, 'f', -1, 64) + suffix
	}
	fixed := decimal.NewFromFloat(value).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(prefix)
	b.WriteString(group(intPart))
	b.WriteString(decimalMark)
	b.WriteString(fracPart)
	b.WriteString(suffix)
	return b.String()
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
