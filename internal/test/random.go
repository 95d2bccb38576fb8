package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const wordLetters = "abcdefghijklmnopqrstuvwxyz"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomWord returns a lowercase word with length in [minLen, maxLen].
func RandomWord(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = wordLetters[randomIntn(len(wordLetters))]
	}
	return string(buf)
}

// RandomText returns exactly n words separated by mixed whitespace and punctuation.
func RandomText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			switch randomIntn(4) {
			case 0:
				b.WriteString(", ")
			case 1:
				b.WriteString("\n")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(RandomWord(1, 12))
	}
	return b.String()
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
