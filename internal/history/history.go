// Package history looks up expected transactions in rendered history and
// scheduled-transaction rows.
package history

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/match"
)

// ErrNotFound is returned by Find when no row holds every expected term.
var ErrNotFound = errors.New("transaction not found")

// DefaultDateLayout renders dates as shown in the history list.
const DefaultDateLayout = "02/01/2006"

// Entry is an expected transaction. A negative Amount is a debit.
// Display, when set, is the amount exactly as the history list shows it
// ("- € 50.00") and is searched for instead of a rendering of Amount.
type Entry struct {
	Date     time.Time
	Amount   decimal.Decimal
	Currency string
	Display  string
	Remarks  string
}

// Terms returns the search terms for e: the formatted date, the signed amount
// ("- EUR 50.00", or Display) and the remarks when set. A zero Date is left out.
func Terms(e Entry, layout string) []string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	var terms []string
	if !e.Date.IsZero() {
		terms = append(terms, e.Date.Format(layout))
	}
	terms = append(terms, amountTerm(e))
	if r := strings.TrimSpace(e.Remarks); r != "" {
		terms = append(terms, r)
	}
	return terms
}

// Find returns the index of the first row containing e. When nothing
// matches, the error lists the terms missing from the closest row.
func Find(rows []string, e Entry, layout string) (int, error) {
	terms := Terms(e, layout)
	if i, ok := match.FindRow(rows, terms); ok {
		return i, nil
	}

	if len(rows) == 0 {
		return -1, fmt.Errorf("%w: history is empty", ErrNotFound)
	}
	closest := terms
	for _, row := range rows {
		if missing := match.Missing(row, terms); len(missing) < len(closest) {
			closest = missing
		}
	}
	return -1, fmt.Errorf("%w: closest row lacks %s", ErrNotFound, strings.Join(quote(closest), ", "))
}

func amountTerm(e Entry) string {
	if d := amount.NormalizeSpace(e.Display); d != "" {
		return d
	}
	code := e.Currency
	if code == amount.UnknownCurrency {
		code = ""
	}
	return amount.Format(code, e.Amount)
}

func quote(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
