package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction is the side of an FX quote: the bank buys or sells the foreign currency.
type Direction int

const (
	// Buy divides the foreign amount by the buy rate.
	Buy Direction = iota + 1
	// Sell multiplies the foreign amount by the sell rate.
	Sell
)

// String returns "buy" or "sell".
func (d Direction) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

var (
	// ErrInvalidExchangeRateType is matched by InvalidExchangeRateTypeError.
	ErrInvalidExchangeRateType = errors.New("invalid exchange rate type")
	// ErrInvalidRate is returned for a zero or negative exchange rate.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)

// InvalidExchangeRateTypeError names a direction value that is neither "buy" nor "sell".
type InvalidExchangeRateTypeError struct {
	Value string
}

func (e *InvalidExchangeRateTypeError) Error() string {
	return fmt.Sprintf("invalid exchange rate type %q (must be buy or sell)", e.Value)
}

func (e *InvalidExchangeRateTypeError) Is(target error) bool {
	return target == ErrInvalidExchangeRateType
}

// ParseDirection parses "buy" or "sell", ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, &InvalidExchangeRateTypeError{Value: s}
	}
}

// Convert turns a foreign amount into the account currency at rate.
// Rounding to 2 places happens once, on the final value.
func Convert(amount, rate decimal.Decimal, dir Direction) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("rate %s: %w", rate, ErrInvalidRate)
	}
	switch dir {
	case Buy:
		return amount.Div(rate).Round(2), nil
	case Sell:
		return amount.Mul(rate).Round(2), nil
	default:
		return decimal.Zero, &InvalidExchangeRateTypeError{Value: dir.String()}
	}
}
