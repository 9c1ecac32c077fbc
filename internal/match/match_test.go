package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Salary CREDIT \n", "salary credit"},
		{"01/02/2024,\t- € 50.00", "01/02/2024, - € 50.00"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  bool
	}{
		{
			name:  "all terms present",
			text:  "01/02/2024,  - € 50.00   Salary",
			terms: []string{"01/02/2024", "- € 50.00", "salary"},
			want:  true,
		},
		{
			name:  "remark absent",
			text:  "01/02/2024 - € 50.00 Rent",
			terms: []string{"Salary"},
			want:  false,
		},
		{
			name:  "order independent",
			text:  "Salary 01/02/2024 - € 50.00",
			terms: []string{"- € 50.00", "01/02/2024", "SALARY"},
			want:  true,
		},
		{
			name:  "line breaks between nodes",
			text:  "01/02/2024\n- € 50.00\nSalary",
			terms: []string{"- € 50.00"},
			want:  true,
		},
		{
			name:  "no terms",
			text:  "anything",
			terms: nil,
			want:  true,
		},
		{
			name:  "substring inside longer number",
			text:  "MUR 15.00",
			terms: []string{"5.00"},
			want:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.text, tt.terms))
		})
	}
}

func TestMatch_Conjunctive(t *testing.T) {
	text := "12/03/2024 Transfer to savings MUR 1,000.00 Ref 8841"
	terms := []string{"12/03/2024", "transfer", "mur 1,000.00", "ref 8841"}

	all := true
	for _, term := range terms {
		all = all && Match(text, []string{term})
	}
	assert.Equal(t, all, Match(text, terms))
	assert.True(t, Match(text, terms))

	assert.False(t, Match(text, append(terms, "bill payment")))
}

func TestMatch_CaseAndWhitespaceInvariant(t *testing.T) {
	text := "01/02/2024   - € 50.00\tSalary  Advance"
	sets := [][]string{
		{"salary advance"},
		{"- € 50.00", "01/02/2024"},
		{"rent"},
	}
	for _, terms := range sets {
		base := Match(text, terms)
		assert.Equal(t, base, Match(strings.ToUpper(text), terms), "upper %v", terms)
		assert.Equal(t, base, Match(Normalize(text), terms), "collapsed %v", terms)
	}
}

func TestMissing(t *testing.T) {
	text := "01/02/2024 - € 50.00 Rent"
	missing := Missing(text, []string{"Salary", "01/02/2024", "MUR 50.00"})
	assert.Equal(t, []string{"Salary", "MUR 50.00"}, missing)
	assert.Empty(t, Missing(text, []string{"rent"}))
}

func TestFindRow(t *testing.T) {
	rows := []string{
		"01/02/2024 - € 50.00 Rent",
		"01/02/2024 - € 50.00 Salary",
		"02/02/2024 - € 50.00 Salary",
	}
	i, ok := FindRow(rows, []string{"salary", "01/02/2024"})
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = FindRow(rows, []string{"bonus"})
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}
