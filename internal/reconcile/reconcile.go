// Package reconcile checks that a balance moved by the expected amount.
package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one balance check.
type Result struct {
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Pass     bool
}

// Difference returns Actual - Expected.
func (r Result) Difference() decimal.Decimal {
	return r.Actual.Sub(r.Expected)
}

// Err returns a ToleranceExceededError when the check failed.
func (r Result) Err() error {
	if r.Pass {
		return nil
	}
	return &ToleranceExceededError{Expected: r.Expected, Actual: r.Actual}
}

// ToleranceExceededError carries expected and actual deltas of a failed check.
type ToleranceExceededError struct {
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *ToleranceExceededError) Error() string {
	return fmt.Sprintf("balance moved by %s, expected %s (difference %s)",
		e.Actual.StringFixed(2), e.Expected.StringFixed(2), e.Actual.Sub(e.Expected).StringFixed(2))
}

// Debit checks that the balance decreased by expected: before - after == expected.
func Debit(before, after, expected, tolerance decimal.Decimal) Result {
	return check(before.Sub(after), expected, tolerance)
}

// Credit checks that the balance increased by expected: after - before == expected.
func Credit(before, after, expected, tolerance decimal.Decimal) Result {
	return check(after.Sub(before), expected, tolerance)
}

// DebitFX is Debit with expected given in a foreign currency and converted at rate.
func DebitFX(before, after, foreign, rate decimal.Decimal, dir Direction, tolerance decimal.Decimal) (Result, error) {
	expected, err := Convert(foreign, rate, dir)
	if err != nil {
		return Result{}, err
	}
	return Debit(before, after, expected, tolerance), nil
}

// CreditFX is Credit with expected given in a foreign currency and converted at rate.
func CreditFX(before, after, foreign, rate decimal.Decimal, dir Direction, tolerance decimal.Decimal) (Result, error) {
	expected, err := Convert(foreign, rate, dir)
	if err != nil {
		return Result{}, err
	}
	return Credit(before, after, expected, tolerance), nil
}

func check(delta, expected, tolerance decimal.Decimal) Result {
	actual := delta.Round(2)
	want := expected.Round(2)
	return Result{
		Expected: want,
		Actual:   actual,
		Pass:     actual.Sub(want).Abs().LessThanOrEqual(tolerance),
	}
}
