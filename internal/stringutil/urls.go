package stringutil

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>"]+`)

// Characters commonly glued onto the end of a URL by surrounding prose.
const trailingPunct = ")]}.,;:!?、。"

// ExtractURLs finds http/https URLs embedded in free text. Trailing sentence
// punctuation and closing brackets are stripped from each match, and
// duplicates are removed while preserving first-seen order.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var urls []string
	for _, m := range matches {
		m = trimTrailingPunct(m)
		if bare := strings.ToLower(m); bare == "http://" || bare == "https://" {
			continue
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		urls = append(urls, m)
	}
	return urls
}

func trimTrailingPunct(s string) string {
	runes := []rune(s)
	for len(runes) > 0 {
		last := runes[len(runes)-1]
		trimmed := false
		for _, p := range trailingPunct {
			if last == p {
				runes = runes[:len(runes)-1]
				trimmed = true
				break
			}
		}
		if !trimmed {
			break
		}
	}
	return string(runes)
}
