// Package htmltext flattens HTML fragments (confirmation messages, field
// descriptions) into display text for non-HTML surfaces.
package htmltext

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy = bluemonday.StrictPolicy()

	breakTags  = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// Flatten strips markup, preserving paragraph and line breaks as newlines,
// and collapses the whitespace the removed tags leave behind.
func Flatten(fragment string) string {
	if fragment == "" {
		return ""
	}
	withBreaks := breakTags.ReplaceAllString(fragment, "\n")
	stripped := policy.Sanitize(withBreaks)
	unescaped := html.UnescapeString(stripped)

	lines := strings.Split(unescaped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = blankLines.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
