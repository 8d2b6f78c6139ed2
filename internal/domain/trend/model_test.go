package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		g, err := ParseGranularity(valid)
		require.NoError(t, err)
		assert.Equal(t, Granularity(valid), g)
	}

	_, err := ParseGranularity("hour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour")
}

func TestWindowKeyLabel(t *testing.T) {
	start := time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-04-21", WindowKey{Granularity: GranularityDay, Start: start}.Label())
	assert.Equal(t, "2025-W17", WindowKey{Granularity: GranularityWeek, Start: start}.Label())
	assert.Equal(t, "2025-04", WindowKey{Granularity: GranularityMonth, Start: start}.Label())
}

func TestWindowKeyBefore(t *testing.T) {
	a := WindowKey{Granularity: GranularityDay, Start: time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)}
	b := WindowKey{Granularity: GranularityDay, Start: time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC)}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
