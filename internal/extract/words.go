package extract

import "regexp"

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// CountWords counts runs of ASCII word characters.
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}
