package reconcile

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"buy", Buy},
		{"BUY", Buy},
		{"  Sell ", Sell},
		{"sell\n", Sell},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, "ParseDirection(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDirection_Invalid(t *testing.T) {
	for _, in := range []string{"", "mid", "buying", "sel"} {
		_, err := ParseDirection(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidExchangeRateType)

		var ie *InvalidExchangeRateTypeError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, in, ie.Value)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "buy", Buy.String())
	assert.Equal(t, "sell", Sell.String())
	assert.Equal(t, "Direction(0)", Direction(0).String())
}

func TestConvert(t *testing.T) {
	got, err := Convert(dec("100"), dec("40.5"), Sell)
	require.NoError(t, err)
	assert.Equal(t, "4050.00", got.StringFixed(2))

	got, err = Convert(dec("4050"), dec("40.5"), Buy)
	require.NoError(t, err)
	assert.Equal(t, "100.00", got.StringFixed(2))

	// 100 / 3 rounds once at the end.
	got, err = Convert(dec("100"), dec("3"), Buy)
	require.NoError(t, err)
	assert.Equal(t, "33.33", got.StringFixed(2))

	got, err = Convert(dec("10.005"), dec("1"), Sell)
	require.NoError(t, err)
	assert.Equal(t, "10.01", got.StringFixed(2))
}

func TestConvert_Errors(t *testing.T) {
	_, err := Convert(dec("100"), decimal.Zero, Buy)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = Convert(dec("100"), dec("-1.5"), Sell)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = Convert(dec("100"), dec("40.5"), Direction(0))
	assert.ErrorIs(t, err, ErrInvalidExchangeRateType)
}

func TestConvert_SellThenBuyRoundTrips(t *testing.T) {
	rates := []string{"40.5", "1.0873", "0.0221", "163.2"}
	amounts := []string{"1.00", "99.99", "1234.56", "0.37", "50000"}
	for _, r := range rates {
		for _, a := range amounts {
			x := dec(a)
			sold, err := Convert(x, dec(r), Sell)
			require.NoError(t, err)
			back, err := Convert(sold, dec(r), Buy)
			require.NoError(t, err)

			// Rounding the intermediate value to cents bounds the error by 0.005/rate.
			bound := dec("0.005").Div(dec(r)).Add(dec("0.005"))
			assert.True(t, back.Sub(x).Abs().LessThanOrEqual(bound),
				"sell/buy %s at %s gave %s", a, r, back)
		}
	}
}
