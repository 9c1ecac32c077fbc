package dataset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/reconcile"
)

// Check is the kind of balance check a case performs.
type Check string

const (
	CheckDebit  Check = "debit"
	CheckCredit Check = "credit"
)

// Column names of a reconciliation sheet.
const (
	ColCaseID    = "case_id"
	ColCheck     = "check"
	ColBefore    = "before"
	ColAfter     = "after"
	ColAmount    = "amount"
	ColCurrency  = "currency"
	ColRate      = "rate"
	ColDirection = "direction"
	ColTolerance = "tolerance"
	ColRemarks   = "remarks"
)

var requiredColumns = []string{ColCaseID, ColCheck, ColBefore, ColAfter, ColAmount}

// Case is one reconciliation scenario: a balance read before and after a
// transaction of Amount. Direction is zero for same-currency cases.
type Case struct {
	ID        string
	Line      int
	Check     Check
	Before    decimal.Decimal
	After     decimal.Decimal
	Amount    decimal.Decimal
	Currency  string
	Rate      decimal.Decimal
	Direction reconcile.Direction
	Tolerance decimal.NullDecimal
	Remarks   string
}

// IsFX reports whether Amount is in a foreign currency.
func (c Case) IsFX() bool {
	return c.Direction != 0
}

// ValidationError describes one bad cell or missing column.
type ValidationError struct {
	Line    int
	CaseID  string
	Column  string
	Message string
}

func (e ValidationError) Error() string {
	if e.CaseID == "" {
		return fmt.Sprintf("line %d [%s]: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d %s [%s]: %s", e.Line, e.CaseID, e.Column, e.Message)
}

// DecodeCases turns a reconciliation sheet into cases. Rows with errors are
// left out and every problem found is reported. A missing currency cell is
// read from the amount's marker using currencies, or the built-in symbols
// when currencies is nil.
func DecodeCases(t *Table, currencies *amount.CurrencyTable) ([]Case, []ValidationError) {
	if currencies == nil {
		currencies = amount.NewCurrencyTable(nil)
	}

	var errs []ValidationError
	for _, col := range requiredColumns {
		if !t.Has(col) {
			errs = append(errs, ValidationError{Line: 1, Column: col, Message: "missing column"})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	var cases []Case
	ids := make(map[string]int)
	for _, rec := range t.Rows {
		c, rowErrs := decodeCase(rec, currencies)
		if c.ID != "" {
			if prev, ok := ids[c.ID]; ok {
				rowErrs = append(rowErrs, ValidationError{
					Line:    rec.Line,
					CaseID:  c.ID,
					Column:  ColCaseID,
					Message: fmt.Sprintf("duplicate case id (first on line %d)", prev),
				})
			} else {
				ids[c.ID] = rec.Line
			}
		}
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		cases = append(cases, c)
	}
	return cases, errs
}

func decodeCase(rec Record, currencies *amount.CurrencyTable) (Case, []ValidationError) {
	c := Case{
		ID:      rec.Get(ColCaseID),
		Line:    rec.Line,
		Remarks: rec.Get(ColRemarks),
	}
	var errs []ValidationError
	fail := func(col, format string, args ...any) {
		errs = append(errs, ValidationError{
			Line:    rec.Line,
			CaseID:  c.ID,
			Column:  col,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if c.ID == "" {
		fail(ColCaseID, "case id is empty")
	}

	switch Check(strings.ToLower(rec.Get(ColCheck))) {
	case CheckDebit:
		c.Check = CheckDebit
	case CheckCredit:
		c.Check = CheckCredit
	default:
		fail(ColCheck, "check %q must be debit or credit", rec.Get(ColCheck))
	}

	money := func(col string) decimal.Decimal {
		v, err := amount.Parse(rec.Get(col))
		if err != nil {
			fail(col, "%v", err)
		}
		return v
	}
	c.Before = money(ColBefore)
	c.After = money(ColAfter)
	c.Amount = money(ColAmount)

	c.Currency = strings.ToUpper(rec.Get(ColCurrency))
	if c.Currency == "" {
		if code := currencies.Code(rec.Get(ColAmount)); code != amount.UnknownCurrency {
			c.Currency = code
		}
	}

	rate, dir := rec.Get(ColRate), rec.Get(ColDirection)
	switch {
	case rate == "" && dir == "":
	case rate == "" || dir == "":
		fail(ColRate, "rate and direction must be given together")
	default:
		d, err := reconcile.ParseDirection(dir)
		if err != nil {
			fail(ColDirection, "%v", err)
		}
		c.Direction = d
		r, err := decimal.NewFromString(rate)
		if err != nil {
			fail(ColRate, "parsing rate %q: %v", rate, err)
		} else if !r.IsPositive() {
			fail(ColRate, "rate %s must be positive", rate)
		}
		c.Rate = r
	}

	if tol := rec.Get(ColTolerance); tol != "" {
		d, err := decimal.NewFromString(tol)
		switch {
		case err != nil:
			fail(ColTolerance, "parsing tolerance %q: %v", tol, err)
		case d.IsNegative():
			fail(ColTolerance, "tolerance %s must not be negative", tol)
		default:
			c.Tolerance = decimal.NewNullDecimal(d)
		}
	}

	return c, errs
}
