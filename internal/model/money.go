package model

import (
	"github.com/shopspring/decimal"
)

// MoneyAmount is a parsed display amount such as "- € 245,911.10".
type MoneyAmount struct {
	Currency string          // ISO code, or "unknown"
	Value    decimal.Decimal // negative = debit marker present
}

// IsNegative reports whether the amount carried a leading sign marker.
func (m MoneyAmount) IsNegative() bool {
	return m.Value.IsNegative()
}

// Abs returns the magnitude of the amount.
func (m MoneyAmount) Abs() decimal.Decimal {
	return m.Value.Abs()
}
