package service

import (
	"math"
	"sort"
	"strings"
)

// Shared helpers for the analytics engines: tokenizing free text, counting
// word frequency with a stable order, rounding and truncation.

// textStopWords is applied to free-text word-frequency extraction.
var textStopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"more": true, "will": true, "been": true, "were": true, "they": true,
	"their": true, "would": true, "could": true, "should": true,
}

// themeStopWords is the smaller set applied to key-theme extraction.
var themeStopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"more": true, "would": true, "could": true, "should": true,
}

// tokenizeWords lowercases text and returns its purely alphabetic tokens of
// at least minLen letters. Tokens containing digits are dropped entirely
// rather than split.
func tokenizeWords(text string, minLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	var words []string
	for _, field := range fields {
		if len(field) < minLen {
			continue
		}
		alphabetic := true
		for _, r := range field {
			if r < 'a' || r > 'z' {
				alphabetic = false
				break
			}
		}
		if alphabetic {
			words = append(words, field)
		}
	}
	return words
}

type wordCount struct {
	Word  string
	Count int
}

// countWords tallies word frequency, preserving first-encounter order so that
// ties rank deterministically.
func countWords(words []string, stopWords map[string]bool) []wordCount {
	counts := make(map[string]int)
	var order []string
	for _, word := range words {
		if stopWords[word] {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	result := make([]wordCount, 0, len(order))
	for _, word := range order {
		result = append(result, wordCount{Word: word, Count: counts[word]})
	}
	// Stable sort keeps first-encountered words ahead on equal counts.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func topWords(counts []wordCount, n int) []wordCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

// truncateText caps text at max characters, appending an ellipsis marker when
// anything was cut. Counting runes rather than bytes keeps multibyte answers
// from being split mid-character.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
