// Package amount parses localized money strings as rendered by the banking UI,
// e.g. "MUR 1,098.20", "- € 245,911.10" or "US$ 2.00".
package amount

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ibcheck/ibcheck/internal/model"
)

// ErrNoNumber is wrapped by ParseError when the input holds no numeric token.
var ErrNoNumber = errors.New("no numeric token")

// ParseError reports a display string that could not be turned into an amount.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing amount %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// numberPattern matches one numeric token with "," thousands and "." decimals.
var numberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// NormalizeSpace turns every whitespace run (including U+00A0) into a single
// ASCII space and trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Parse converts a display string into a value rounded to 2 decimal places.
// A "-" before the numeric token, either leading the string or directly ahead
// of the number, makes the result negative.
func Parse(raw string) (decimal.Decimal, error) {
	s := NormalizeSpace(raw)
	loc := numberPattern.FindStringIndex(s)
	if loc == nil {
		return decimal.Zero, &ParseError{Raw: raw, Err: ErrNoNumber}
	}

	token := strings.ReplaceAll(s[loc[0]:loc[1]], ",", "")
	v, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, &ParseError{Raw: raw, Err: err}
	}
	if signed(s[:loc[0]]) {
		v = v.Neg()
	}
	return v.Round(2), nil
}

// signed reports whether the text ahead of the number carries a minus marker.
func signed(prefix string) bool {
	p := strings.TrimSpace(prefix)
	for _, m := range []string{"-", "−"} {
		if strings.HasPrefix(p, m) || strings.HasSuffix(p, m) {
			return true
		}
	}
	return false
}

// ParseMoney parses raw into a MoneyAmount using the default currency table.
func ParseMoney(raw string) (model.MoneyAmount, error) {
	return defaultTable.ParseMoney(raw)
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
