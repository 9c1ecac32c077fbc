package amount

import (
	"sort"
	"strings"

	"github.com/ibcheck/ibcheck/internal/model"
)

// UnknownCurrency is returned when the leading token is not a recognized code or symbol.
const UnknownCurrency = "unknown"

var defaultSymbols = map[string]string{
	"US$": "USD",
	"Rs.": "MUR",
	"Rs":  "MUR",
	"€":   "EUR",
	"$":   "USD",
	"£":   "GBP",
}

var defaultTable = NewCurrencyTable(nil)

type symbol struct {
	prefix string
	code   string
}

// CurrencyTable maps display prefixes to ISO codes. Longer prefixes win.
type CurrencyTable struct {
	symbols []symbol
}

// NewCurrencyTable creates a table from the built-in symbols plus aliases.
// An alias overrides a built-in symbol with the same prefix.
func NewCurrencyTable(aliases map[string]string) *CurrencyTable {
	merged := make(map[string]string, len(defaultSymbols)+len(aliases))
	for k, v := range defaultSymbols {
		merged[k] = v
	}
	for k, v := range aliases {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		merged[k] = strings.ToUpper(strings.TrimSpace(v))
	}

	t := &CurrencyTable{symbols: make([]symbol, 0, len(merged))}
	for k, v := range merged {
		t.symbols = append(t.symbols, symbol{prefix: k, code: v})
	}
	sort.Slice(t.symbols, func(i, j int) bool {
		a, b := t.symbols[i].prefix, t.symbols[j].prefix
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return t
}

// Code extracts the currency code from a display string such as "MUR 1,098.20".
func (t *CurrencyTable) Code(raw string) string {
	s := strings.TrimLeft(NormalizeSpace(raw), "-− ")

	for _, sym := range t.symbols {
		if strings.HasPrefix(s, sym.prefix) {
			return sym.code
		}
	}

	n := 0
	for n < len(s) && isASCIILetter(s[n]) {
		n++
	}
	if n == 3 {
		return strings.ToUpper(s[:n])
	}
	return UnknownCurrency
}

// ParseMoney parses the value and currency code of raw.
func (t *CurrencyTable) ParseMoney(raw string) (model.MoneyAmount, error) {
	v, err := Parse(raw)
	if err != nil {
		return model.MoneyAmount{}, err
	}
	return model.MoneyAmount{Currency: t.Code(raw), Value: v}, nil
}

// CurrencyCode extracts the currency code using the built-in symbols.
func CurrencyCode(raw string) string {
	return defaultTable.Code(raw)
}

func isASCIILetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
