// Package verify evaluates reconciliation cases.
package verify

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ibcheck/ibcheck/internal/dataset"
	"github.com/ibcheck/ibcheck/internal/reconcile"
)

// Outcome is the evaluation of one case. Err is set when the case could not
// be evaluated; a failed balance check is reported by Result.Pass.
type Outcome struct {
	Case   dataset.Case
	Result reconcile.Result
	Err    error
}

// Status returns "pass", "fail" or "error".
func (o Outcome) Status() string {
	switch {
	case o.Err != nil:
		return "error"
	case o.Result.Pass:
		return "pass"
	default:
		return "fail"
	}
}

// Runner evaluates cases with a default tolerance.
type Runner struct {
	Tolerance decimal.Decimal
	Workers   int // <= 0 means one worker per case
}

// Evaluate runs the balance check for c.
func (r *Runner) Evaluate(c dataset.Case) Outcome {
	tol := r.Tolerance
	if c.Tolerance.Valid {
		tol = c.Tolerance.Decimal
	}

	var (
		res reconcile.Result
		err error
	)
	switch {
	case c.Check == dataset.CheckDebit && c.IsFX():
		res, err = reconcile.DebitFX(c.Before, c.After, c.Amount, c.Rate, c.Direction, tol)
	case c.Check == dataset.CheckCredit && c.IsFX():
		res, err = reconcile.CreditFX(c.Before, c.After, c.Amount, c.Rate, c.Direction, tol)
	case c.Check == dataset.CheckDebit:
		res = reconcile.Debit(c.Before, c.After, c.Amount, tol)
	case c.Check == dataset.CheckCredit:
		res = reconcile.Credit(c.Before, c.After, c.Amount, tol)
	default:
		err = fmt.Errorf("unknown check %q", c.Check)
	}
	if err != nil {
		return Outcome{Case: c, Err: fmt.Errorf("case %s: %w", c.ID, err)}
	}
	return Outcome{Case: c, Result: res}
}

// Run evaluates cases concurrently and returns outcomes in input order.
// Cases not started before ctx is done carry ctx.Err().
func (r *Runner) Run(ctx context.Context, cases []dataset.Case) []Outcome {
	out := make([]Outcome, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Outcome{Case: c, Err: err}
				return nil
			}
			out[i] = r.Evaluate(c)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Summary counts outcomes by status.
func Summary(outcomes []Outcome) (passed, failed, errored int) {
	for _, o := range outcomes {
		switch o.Status() {
		case "pass":
			passed++
		case "fail":
			failed++
		default:
			errored++
		}
	}
	return passed, failed, errored
}
