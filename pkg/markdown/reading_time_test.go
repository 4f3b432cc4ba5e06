package markdown

import (
	"strings"
	"testing"
)

func TestEstimateReadingTime(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		wpm   int
		words int
		text  string
	}{
		{name: "empty body", body: "", wpm: 200, words: 0, text: "0 min read"},
		{name: "one word", body: "word", wpm: 200, words: 1, text: "1 min read"},
		{name: "exactly one minute", body: strings.Repeat("word ", 200), wpm: 200, words: 200, text: "1 min read"},
		{name: "three hundred words", body: strings.Repeat("word ", 300), wpm: 200, words: 300, text: "2 min read"},
		{name: "tiny overflow rounds down first", body: strings.Repeat("word ", 2001), wpm: 2000, words: 2001, text: "1 min read"},
		{name: "default words per minute", body: strings.Repeat("word ", 1000), wpm: 0, words: 1000, text: "5 min read"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateReadingTime(tc.body, tc.wpm)

			if got.Words != tc.words {
				t.Fatalf("expected %d words, got %d", tc.words, got.Words)
			}

			if got.Text != tc.text {
				t.Fatalf("expected %q, got %q", tc.text, got.Text)
			}
		})
	}
}

func TestCountWordsIgnoresMarkup(t *testing.T) {
	if got := CountWords("**bold** and [a link](https://example.com)"); got != 4 {
		t.Fatalf("expected 4 words, got %d", got)
	}
}
