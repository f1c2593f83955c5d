package engine

import (
	"regexp"
	"strings"
)

// UserAgentBot identifies our plain HTTP fetches (timedtext caption URLs).
const UserAgentBot = "GoRecap/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}
