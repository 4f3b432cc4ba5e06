package markdown

import (
	"fmt"
	"math"
	"strings"

	stripmd "github.com/writeas/go-strip-markdown"
)

const DefaultWordsPerMinute = 200

type ReadingTime struct {
	Text    string
	Minutes float64
	Words   int
}

// EstimateReadingTime rounds the minutes to two decimals before taking the
// ceiling, so 1.001 minutes still reads as "1 min read".
func EstimateReadingTime(body string, wordsPerMinute int) ReadingTime {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	words := CountWords(body)
	minutes := float64(words) / float64(wordsPerMinute)
	displayed := math.Ceil(math.Round(minutes*100) / 100)

	return ReadingTime{
		Text:    fmt.Sprintf("%d min read", int(displayed)),
		Minutes: minutes,
		Words:   words,
	}
}

func CountWords(body string) int {
	return len(strings.Fields(stripmd.Strip(body)))
}
