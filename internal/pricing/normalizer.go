package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// DefaultFileWords is the placeholder estimate for a document whose text was not counted.
const DefaultFileWords = 500

// NormalizedWords returns the billable word count of a task regardless of its origin.
func NormalizedWords(task model.AssignmentTask) int64 {
	if task.WordCount != "" {
		return parseStoredCount(task.WordCount)
	}
	if task.File != nil {
		return DefaultFileWords
	}
	return 0
}

// ExplicitWords returns only the explicit word count of a task; file estimates contribute nothing.
func ExplicitWords(task model.AssignmentTask) int64 {
	if task.WordCount == "" {
		return 0
	}
	return parseStoredCount(task.WordCount)
}

// parseStoredCount reads a persisted count, clamped to [0, MaxWordCount].
func parseStoredCount(raw string) int64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n >= MaxWordCount {
		return MaxWordCount
	}
	return int64(math.Round(n))
}

// maxTotal bounds every aggregated count and cent amount so that
// multiplying by the largest urgency factor cannot overflow int64.
const maxTotal = math.MaxInt64 / 100

func addCapped(a, b int64) int64 {
	if b >= maxTotal-a {
		return maxTotal
	}
	return a + b
}
