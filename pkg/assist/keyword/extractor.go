package keyword

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// stopWords are filler terms that never help a record lookup.
var stopWords = map[string]struct{}{
	"is": {}, "are": {}, "the": {}, "of": {}, "in": {}, "at": {}, "to": {},
	"for": {}, "on": {}, "with": {}, "by": {}, "about": {}, "tell": {}, "me": {},
}

// Extract tokenizes a raw query into lowercase search terms. Tokens split
// on non-word boundaries; stop words and tokens of length <= 2 are dropped.
// No stemming, no synonym expansion. Never fails.
func Extract(query string) []string {
	words := wordPattern.FindAllString(strings.ToLower(query), -1)

	seen := make(map[string]struct{}, len(words))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}
