package weather

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	cityPattern   = regexp.MustCompile(`(?i)\bin ([a-z\s]+)`)
	wordPattern   = regexp.MustCompile(`[a-zA-Z]+`)
	inDaysPattern = regexp.MustCompile(`in (\d+) days`)
)

// trailingDayWords are stripped from the end of a city phrase; ExtractDay owns them.
var trailingDayWords = map[string]bool{
	"today":    true,
	"tomorrow": true,
	"day":      true,
	"after":    true,
	"in":       true,
}

// ExtractCity returns the run of letters and spaces that follows the word "in".
// The match is greedy, so "weather in new york please" yields "new york please".
func ExtractCity(text string) (string, bool) {
	m := cityPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	phrase := m[1]
	words := wordPattern.FindAllStringIndex(phrase, -1)
	for len(words) > 0 {
		last := words[len(words)-1]
		if !trailingDayWords[strings.ToLower(phrase[last[0]:last[1]])] {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return "", false
	}

	city := strings.TrimSpace(phrase[:words[len(words)-1][1]])
	return city, true
}

// ExtractDay maps day phrases to an offset from today. Checks run in priority
// order: today, tomorrow, day after tomorrow, "in N days".
func ExtractDay(text string) (int, bool) {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "today"):
		return 0, true
	case strings.Contains(t, "tomorrow"):
		return 1, true
	case strings.Contains(t, "day after tomorrow"):
		// Shadowed by "tomorrow" above.
		return 2, true
	}

	if m := inDaysPattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

// ParseQuery runs both extractors over a message.
func ParseQuery(text string) Query {
	var q Query
	q.City, q.HasCity = ExtractCity(text)
	q.DayOffset, q.HasDay = ExtractDay(text)
	return q
}
