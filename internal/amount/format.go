package amount

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders value the way balances are displayed: "MUR 1,234.56",
// or "- EUR 50.00" for negative values. An empty code renders the number only.
func Format(code string, value decimal.Decimal) string {
	v := Round2(value)
	whole, frac, _ := strings.Cut(v.Abs().StringFixed(2), ".")
	s := groupThousands(whole) + "." + frac
	if code != "" {
		s = code + " " + s
	}
	if v.IsNegative() {
		s = "- " + s
	}
	return s
}

// groupThousands inserts "," separators into a string of decimal digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}

	// Beyond int64.
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
