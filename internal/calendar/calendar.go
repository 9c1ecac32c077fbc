// Package calendar pages a month-view date picker to a target month.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultMaxSteps bounds PageTo when maxSteps is not positive.
const DefaultMaxSteps = 240

var (
	// ErrTooManySteps is returned when the target is further than maxSteps months away.
	ErrTooManySteps = errors.New("calendar: too many steps")
	// ErrStuck is returned when a Next or Prev click did not change the shown month.
	ErrStuck = errors.New("calendar: month did not change")
)

// Widget is a date picker driven by the UI harness.
type Widget interface {
	// Shown returns the month header text, e.g. "February 2024".
	Shown(ctx context.Context) (string, error)
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
}

var monthLayouts = []string{
	"January 2006",
	"Jan 2006",
	"01/2006",
	"1/2006",
	"2006-01",
	"January, 2006",
}

// ParseMonth parses a month header. Case and spacing are ignored.
func ParseMonth(header string) (time.Time, error) {
	s := strings.Join(strings.Fields(header), " ")
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing month header %q", header)
}

// MonthsBetween returns how many months to move forward from `from` to reach
// `to`; negative when `to` is earlier. Days are ignored.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// PageTo clicks Next or Prev until the widget shows target's month and
// returns the number of clicks.
func PageTo(ctx context.Context, w Widget, target time.Time, maxSteps int) (int, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	steps := 0
	var last time.Time
	for {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		header, err := w.Shown(ctx)
		if err != nil {
			return steps, fmt.Errorf("reading month: %w", err)
		}
		shown, err := ParseMonth(header)
		if err != nil {
			return steps, err
		}
		if steps > 0 && shown.Equal(last) {
			return steps, fmt.Errorf("%w: still on %s", ErrStuck, shown.Format("January 2006"))
		}

		diff := MonthsBetween(shown, target)
		if diff == 0 {
			return steps, nil
		}
		if steps >= maxSteps {
			return steps, fmt.Errorf("%w: %d months left after %d", ErrTooManySteps, diff, steps)
		}

		if diff > 0 {
			err = w.Next(ctx)
		} else {
			err = w.Prev(ctx)
		}
		if err != nil {
			return steps, fmt.Errorf("paging calendar: %w", err)
		}
		last = shown
		steps++
	}
}
