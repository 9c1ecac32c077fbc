package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/reconcile"
)

func loadCSV(t *testing.T, data string) *Table {
	t.Helper()
	tbl, err := (&CSVLoader{}).Load(strings.NewReader(data))
	require.NoError(t, err)
	return tbl
}

func TestDecodeCases(t *testing.T) {
	tbl := loadCSV(t, `case_id,check,before,after,amount,currency,rate,direction,tolerance,remarks
tr-001,debit,"MUR 10,000.00","MUR 9,000.00",1000,MUR,,,,Rent
tr-002,Credit,"€ 139,426.55","€ 139,476.55",€ 50.00,,,,0.01,Salary
cp-001,debit,"MUR 10,000.00","MUR 5,950.00",USD 100.00,,40.5, SELL ,,Card
`)

	cases, errs := DecodeCases(tbl, nil)
	require.Empty(t, errs)
	require.Len(t, cases, 3)

	tr1 := cases[0]
	assert.Equal(t, "tr-001", tr1.ID)
	assert.Equal(t, 2, tr1.Line)
	assert.Equal(t, CheckDebit, tr1.Check)
	assert.Equal(t, "10000.00", tr1.Before.StringFixed(2))
	assert.Equal(t, "9000.00", tr1.After.StringFixed(2))
	assert.Equal(t, "1000.00", tr1.Amount.StringFixed(2))
	assert.Equal(t, "MUR", tr1.Currency)
	assert.False(t, tr1.IsFX())
	assert.False(t, tr1.Tolerance.Valid)
	assert.Equal(t, "Rent", tr1.Remarks)

	tr2 := cases[1]
	assert.Equal(t, CheckCredit, tr2.Check)
	assert.Equal(t, "EUR", tr2.Currency, "currency falls back to the amount's symbol")
	require.True(t, tr2.Tolerance.Valid)
	assert.Equal(t, "0.01", tr2.Tolerance.Decimal.StringFixed(2))

	cp1 := cases[2]
	assert.True(t, cp1.IsFX())
	assert.Equal(t, reconcile.Sell, cp1.Direction)
	assert.Equal(t, "40.5", cp1.Rate.String())
	assert.Equal(t, "USD", cp1.Currency)
}

func TestDecodeCases_CurrencyAliases(t *testing.T) {
	tbl := loadCSV(t, `case_id,check,before,after,amount
ch-001,debit,"Fr. 1,000.00","Fr. 900.00","Fr. 100.00"
`)

	cases, errs := DecodeCases(tbl, amount.NewCurrencyTable(map[string]string{"Fr.": "CHF"}))
	require.Empty(t, errs)
	require.Len(t, cases, 1)
	assert.Equal(t, "CHF", cases[0].Currency)

	cases, errs = DecodeCases(tbl, nil)
	require.Empty(t, errs)
	assert.Empty(t, cases[0].Currency, "unknown markers are left blank")
}

func TestDecodeCases_MissingColumns(t *testing.T) {
	tbl := loadCSV(t, "case_id,check,before\nx,debit,1\n")
	cases, errs := DecodeCases(tbl, nil)
	assert.Nil(t, cases)
	require.Len(t, errs, 2)
	assert.Equal(t, ColAfter, errs[0].Column)
	assert.Equal(t, ColAmount, errs[1].Column)
	assert.Equal(t, "line 1 [after]: missing column", errs[0].Error())
}

func hasError(errs []ValidationError, caseID, column string) bool {
	for _, e := range errs {
		if e.CaseID == caseID && e.Column == column {
			return true
		}
	}
	return false
}

func TestDecodeCases_RowErrors(t *testing.T) {
	tbl := loadCSV(t, `case_id,check,before,after,amount,rate,direction,tolerance
ok-1,debit,100,90,10,,,
bad-check,refund,100,90,10,,,
bad-amount,debit,N/A,90,10,,,
bad-direction,debit,100,90,10,40.5,mid,
rate-only,debit,100,90,10,40.5,,
bad-rate,debit,100,90,10,zero,buy,
zero-rate,debit,100,90,10,0,buy,
bad-tolerance,debit,100,90,10,,,-1
,debit,100,90,10,,,
ok-1,credit,90,100,10,,,
`)

	cases, errs := DecodeCases(tbl, nil)
	require.Len(t, cases, 1)
	assert.Equal(t, "ok-1", cases[0].ID)

	assert.True(t, hasError(errs, "bad-check", ColCheck))
	assert.True(t, hasError(errs, "bad-amount", ColBefore))
	assert.True(t, hasError(errs, "bad-direction", ColDirection))
	assert.True(t, hasError(errs, "rate-only", ColRate))
	assert.True(t, hasError(errs, "bad-rate", ColRate))
	assert.True(t, hasError(errs, "zero-rate", ColRate))
	assert.True(t, hasError(errs, "bad-tolerance", ColTolerance))
	assert.True(t, hasError(errs, "", ColCaseID))
	assert.True(t, hasError(errs, "ok-1", ColCaseID), "duplicate id is reported")

	for _, e := range errs {
		if e.CaseID == "bad-amount" {
			assert.Contains(t, e.Error(), `"N/A"`)
			assert.Contains(t, e.Error(), "line 4 bad-amount [before]")
		}
	}
}
