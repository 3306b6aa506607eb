package bedrock

import (
	"regexp"
	"strings"
)

var (
	excessNewlines    = regexp.MustCompile(`\n{3,}`)
	spacesBeforeBreak = regexp.MustCompile(` +\n`)
	spacesAfterBreak  = regexp.MustCompile(`\n +`)
)

// FormatResponse cleans up agent output: the event stream delivers text
// with literal escape sequences and uneven whitespace.
func FormatResponse(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "    ")
	text = strings.ReplaceAll(text, `\`, "")

	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = spacesBeforeBreak.ReplaceAllString(text, "\n")
	text = spacesAfterBreak.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}
