package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterSet(t *testing.T) {
	t.Run("normaliza lojas e datas", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600))
		ids := []int{3, 1, 3, 2}

		filters := NewFilterSet(&start, nil, ids)

		require.NotNil(t, filters.StartDate)
		assert.Equal(t, Date(2025, time.January, 1), *filters.StartDate)
		assert.Nil(t, filters.EndDate)
		assert.Equal(t, []int{1, 2, 3}, filters.StoreIDs)
		assert.Equal(t, []int{3, 1, 3, 2}, ids)
		assert.True(t, filters.HasStores())
	})

	t.Run("sem lojas não aplica filtro", func(t *testing.T) {
		filters := NewFilterSet(nil, nil, []int{})

		assert.Nil(t, filters.StoreIDs)
		assert.False(t, filters.HasStores())
		assert.Equal(t, "start=- end=-", filters.String())
	})

	t.Run("não compartilha ponteiros de data", func(t *testing.T) {
		start := Date(2025, time.March, 10)
		filters := NewFilterSet(&start, &start, nil)

		start = start.AddDate(0, 0, 5)
		assert.Equal(t, Date(2025, time.March, 10), *filters.StartDate)
		assert.Equal(t, "start=2025-03-10 end=2025-03-10", filters.String())
	})
}

func TestFilterSetDays(t *testing.T) {
	day := func(d int) *time.Time {
		date := Date(2025, time.January, d)
		return &date
	}

	tests := []struct {
		name     string
		filters  FilterSet
		expected int
	}{
		{name: "mesmo dia", filters: FilterSet{StartDate: day(5), EndDate: day(5)}, expected: 1},
		{name: "dez dias", filters: FilterSet{StartDate: day(11), EndDate: day(20)}, expected: 10},
		{name: "sem início", filters: FilterSet{EndDate: day(20)}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.Days())
		})
	}
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		input    string
		expected Granularity
		wantErr  bool
	}{
		{input: "", expected: GranularityDay},
		{input: "day", expected: GranularityDay},
		{input: " Week ", expected: GranularityWeek},
		{input: "MONTH", expected: GranularityMonth},
		{input: "year", wantErr: true},
		{input: "hour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			granularity, err := ParseGranularity(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, granularity)
		})
	}
}

func TestAverageTicket(t *testing.T) {
	assert.True(t, AverageTicket(decimal.RequireFromString("100"), 0).IsZero())
	assert.Equal(t, "25", AverageTicket(decimal.RequireFromString("100"), 4).String())
	assert.Equal(t, "33.3333333333333333", AverageTicket(decimal.RequireFromString("100"), 3).String())
}
