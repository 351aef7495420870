package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodFilter(t *testing.T) {
	filter := ParsePeriodFilter("2024", "3")
	require.NotNil(t, filter.Year)
	require.NotNil(t, filter.Month)
	assert.Equal(t, 2024, *filter.Year)
	assert.Equal(t, 3, *filter.Month)

	t.Run("non numeric values are ignored per field", func(t *testing.T) {
		filter := ParsePeriodFilter("abc", "5")
		assert.Nil(t, filter.Year)
		require.NotNil(t, filter.Month)
		assert.Equal(t, 5, *filter.Month)
	})

	t.Run("empty values match everything", func(t *testing.T) {
		assert.True(t, ParsePeriodFilter("", "").IsZero())
	})
}
