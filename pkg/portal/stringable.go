package portal

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// ToFold returns a caseless form suitable for comparing user supplied labels.
func (s Stringable) ToFold() string {
	caser := cases.Fold()

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) ToSnakeCase() string {
	var result strings.Builder

	for i, r := range s.value {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func (s Stringable) ToDatetime() (*time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, s.value)

	if err != nil {
		return nil, fmt.Errorf("error parsing date string: %w", err)
	}

	return &parsed, nil
}

// SplitList splits a comma separated list, dropping blank items.
func (s Stringable) SplitList() []string {
	return FilterNonEmpty(strings.Split(s.value, ","))
}
