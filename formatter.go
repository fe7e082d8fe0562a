package datagrid

import (
	"fmt"
	"strings"
)

// PrintfFormat returns a Column.Format function calling
// fmt.Sprintf with layout and the dereferenced value.
// Null values are formatted as an empty string.
//
// Example:
//
//	Column[Account]{ID: "term", Format: PrintfFormat("%d days")}
func PrintfFormat(layout string) func(any) string {
	return func(value any) string {
		if IsNull(value) {
			return ""
		}
		return fmt.Sprintf(layout, deref(value))
	}
}

// CurrencyFormat returns a Column.Format function for AmountCell columns
// that formats the value with the thousands separators of formatter
// and prefixes it with symbol.
// Values that can't be parsed as amount are formatted
// as the formatter's placeholder.
//
// Example:
//
//	Column[Invoice]{ID: "total", Type: AmountCell{}, Format: CurrencyFormat("$", nil)}
//	// 1234.5 is displayed as "$1,234.5"
func CurrencyFormat(symbol string, formatter *Formatter) func(any) string {
	return func(value any) string {
		amount, ok := ParseCurrency(value)
		if IsNull(value) || !ok {
			return formatter.PlaceholderValue().Text
		}
		str := formatter.FormatAmount(amount)
		if neg, ok := strings.CutPrefix(str, "-"); ok {
			return "-" + symbol + neg
		}
		return symbol + str
	}
}

// UpperFormat formats the value with fmt.Sprint as upper case string.
func UpperFormat(value any) string {
	if IsNull(value) {
		return ""
	}
	return strings.ToUpper(displayString(value))
}
