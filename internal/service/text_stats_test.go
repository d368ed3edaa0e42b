package service

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTokenizeWords(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		minLen int
		want   []string
	}{
		{"lowercases and splits", "Great LECTURES!", 4, []string{"great", "lectures"}},
		{"drops short tokens", "it was so good", 4, []string{"good"}},
		{"drops tokens with digits", "room cs101 lectures", 4, []string{"room", "lectures"}},
		{"punctuation separates", "clear,concise;helpful", 4, []string{"clear", "concise", "helpful"}},
		{"empty text", "", 1, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenizeWords(tc.text, tc.minLen)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCountWordsStableTieOrder(t *testing.T) {
	words := []string{"alpha", "beta", "alpha", "gamma", "beta", "delta"}
	counts := countWords(words, nil)

	want := []wordCount{
		{"alpha", 2},
		{"beta", 2},
		{"gamma", 1},
		{"delta", 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("expected %v, got %v", want, counts)
	}
}

func TestCountWordsFiltersStopWords(t *testing.T) {
	words := []string{"this", "lectures", "that", "lectures"}
	counts := countWords(words, textStopWords)

	if len(counts) != 1 || counts[0].Word != "lectures" || counts[0].Count != 2 {
		t.Fatalf("expected only lectures x2, got %v", counts)
	}
}

func TestTopWords(t *testing.T) {
	counts := []wordCount{{"a", 3}, {"b", 2}, {"c", 1}}
	if got := topWords(counts, 2); len(got) != 2 || got[0].Word != "a" {
		t.Fatalf("unexpected top words: %v", got)
	}
	if got := topWords(counts, 10); len(got) != 3 {
		t.Fatalf("expected all counts when under the cap, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{13.0 / 3.0, 4.33},
		{2.0 / 3.0, 0.67},
		{1.005, 1.0}, // binary representation lands just under 1.005
		{100.0, 100.0},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Fatalf("round2(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := percentage(1, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
	if got := percentage(5, 0); got != 0 {
		t.Fatalf("zero total must yield 0, got %v", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 100); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	got := truncateText("abcdefghij", 4)
	if got != "abcd..." {
		t.Fatalf("expected abcd..., got %q", got)
	}
}

func TestTruncateTextCountsCharactersNotBytes(t *testing.T) {
	// 61 characters but 121 bytes; a byte cut at 100 would land mid-rune.
	long := "a" + strings.Repeat("é", 60)
	got := truncateText(long, 100)
	if got != long {
		t.Fatalf("61-character text must not be truncated at 100 characters, got %q", got)
	}

	got = truncateText(strings.Repeat("é", 120), 100)
	if !utf8.ValidString(got) {
		t.Fatal("truncated text must stay valid UTF-8")
	}
	if utf8.RuneCountInString(got) != 103 { // 100 kept runes plus "..."
		t.Fatalf("expected 100 characters plus ellipsis, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
