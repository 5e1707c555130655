package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{value: "0", expected: 0},
		{value: "66.6666666666666667", expected: 66.67},
		{value: "75.125", expected: 75.13},
		{value: "-66.666", expected: -66.67},
		{value: "200", expected: 200},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestParseIntList(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected []int
		wantErr  bool
	}{
		{name: "ausente", values: nil, expected: nil},
		{name: "separado por vírgula", values: []string{"1,2, 3"}, expected: []int{1, 2, 3}},
		{name: "repetido", values: []string{"4", "5,6"}, expected: []int{4, 5, 6}},
		{name: "partes vazias", values: []string{",7,,"}, expected: []int{7}},
		{name: "não numérico", values: []string{"1,x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := ParseIntList(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestParseOptionalInt(t *testing.T) {
	n, err := ParseOptionalInt("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ParseOptionalInt(" 25 ", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = ParseOptionalInt("dez", 10)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("28/02/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}
