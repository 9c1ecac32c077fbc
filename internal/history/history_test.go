package history

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibcheck/ibcheck/internal/amount"
)

func TestTerms(t *testing.T) {
	e := Entry{
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString("-50"),
		Currency: "EUR",
		Remarks:  " Salary ",
	}
	assert.Equal(t, []string{"01/02/2024", "- EUR 50.00", "Salary"}, Terms(e, ""))
	assert.Equal(t, []string{"2024-02-01", "- EUR 50.00", "Salary"}, Terms(e, "2006-01-02"))

	e.Remarks = ""
	e.Date = time.Time{}
	assert.Equal(t, []string{"- EUR 50.00"}, Terms(e, ""))
}

func TestTerms_Amount(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"iso code", Entry{Amount: decimal.RequireFromString("1098.2"), Currency: "MUR"}, "MUR 1,098.20"},
		{"display kept", Entry{Amount: decimal.RequireFromString("-50"), Currency: "EUR", Display: " -\u00a0€  50.00 "}, "- € 50.00"},
		{"unknown currency", Entry{Amount: decimal.RequireFromString("50"), Currency: amount.UnknownCurrency}, "50.00"},
		{"no currency", Entry{Amount: decimal.RequireFromString("-1250")}, "- 1,250.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, Terms(tt.entry, ""))
		})
	}
}

func TestFind_DisplayedAmounts(t *testing.T) {
	rows := []string{
		"31/01/2024,  - Rs 500.00   Electricity",
		"01/02/2024,  - € 50.00   Salary",
		"02/02/2024   75.00   Refund",
	}
	tests := []struct {
		name    string
		display string
		date    time.Time
		remarks string
		want    int
	}{
		{"euro symbol", "- € 50.00", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "salary", 1},
		{"rupee symbol", "- Rs 500.00", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "Electricity", 0},
		{"bare number", "75.00", time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "refund", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := amount.ParseMoney(tt.display)
			require.NoError(t, err)
			e := Entry{Date: tt.date, Amount: m.Value, Currency: m.Currency, Display: tt.display, Remarks: tt.remarks}

			i, err := Find(rows, e, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, i)
		})
	}
}

func TestFind_BareNumberWithoutDisplay(t *testing.T) {
	m, err := amount.ParseMoney("75.00")
	require.NoError(t, err)
	require.Equal(t, amount.UnknownCurrency, m.Currency)

	i, err := Find([]string{"02/02/2024   75.00   Refund"}, Entry{Amount: m.Value, Currency: m.Currency}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestFind(t *testing.T) {
	rows := []string{
		"31/01/2024\n- EUR 50.00\nRent",
		"01/02/2024  - EUR  1,250.00 Salary",
		"01/02/2024 - EUR 50.00 Salary advance",
	}
	e := Entry{
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString("-50"),
		Currency: "EUR",
		Remarks:  "salary",
	}
	i, err := Find(rows, e, "")
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestFind_NotFound(t *testing.T) {
	rows := []string{
		"31/01/2024 - EUR 50.00 Rent",
		"01/02/2024 - EUR 50.00 Rent",
	}
	e := Entry{
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString("-50"),
		Currency: "EUR",
		Remarks:  "Salary",
	}
	i, err := Find(rows, e, "")
	assert.Equal(t, -1, i)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `closest row lacks "Salary"`)
	assert.NotContains(t, err.Error(), "01/02/2024")

	_, err = Find(nil, e, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "empty")
}
