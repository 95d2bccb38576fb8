package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
)

// MaxWordCount is the largest word count a single task may carry.
const MaxWordCount = math.MaxInt32

// ParseWordCount validates a user-entered word count such as "1,200".
func ParseWordCount(raw string) (int64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if trimmed == "" {
		return 0, domainErrors.ErrInvalidWordCount
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrInvalidWordCount, raw)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrInvalidWordCount, raw)
	}
	rounded := math.Round(n)
	if rounded < 1 || rounded > MaxWordCount {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrInvalidWordCount, raw)
	}
	return int64(rounded), nil
}

// ParseUrgencyValue validates a turnaround value; it must be a finite positive number.
func ParseUrgencyValue(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, domainErrors.ErrInvalidUrgency
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrInvalidUrgency, raw)
	}
	return v, nil
}
