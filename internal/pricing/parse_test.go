package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
)

func TestParseWordCount(t *testing.T) {
	valid := map[string]int64{
		"1200":   1200,
		" 1,200": 1200,
		"99.6":   100,
		"1e3":    1000,
	}
	for raw, want := range valid {
		got, err := ParseWordCount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "   ", "abc", "0", "-5", "0.2", "NaN", "Inf"} {
		_, err := ParseWordCount(raw)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidWordCount, raw)
	}
}

func TestParseUrgencyValue(t *testing.T) {
	v, err := ParseUrgencyValue(" 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	for _, raw := range []string{"", "tomorrow", "0", "-1", "NaN", "+Inf"} {
		_, err := ParseUrgencyValue(raw)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidUrgency, raw)
	}
}
