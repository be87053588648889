// file: internals/helpers/datetime_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleTime(t *testing.T) {
	t.Run("rfc3339 timestamp", func(t *testing.T) {
		got := ParseFlexibleTime("2024-09-10T08:30:00Z")
		require.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2024, 9, 10, 8, 30, 0, 0, time.UTC)))
	})

	t.Run("date only becomes midnight UTC", func(t *testing.T) {
		got := ParseFlexibleTime("2024-09-10")
		require.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		got := ParseFlexibleTime("  2024-09-10  ")
		require.NotNil(t, got)
	})

	t.Run("unparseable input is treated as absent", func(t *testing.T) {
		assert.Nil(t, ParseFlexibleTime("next monday"))
		assert.Nil(t, ParseFlexibleTime("10/09/2024"))
		assert.Nil(t, ParseFlexibleTime(""))
	})
}

func TestFirstOr(t *testing.T) {
	def := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, v, FirstOr(&v, def))
	assert.Equal(t, def, FirstOr(nil, def))
}

func TestMonthDueDate(t *testing.T) {
	got := MonthDueDate(2024, time.September)
	assert.Equal(t, time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), got)
}
