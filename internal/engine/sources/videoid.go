package sources

import "regexp"

// videoIDRe matches an 11-character video ID immediately preceded by "v=" or
// a path separator. Covers watch?v=, youtu.be/, /embed/ and /shorts/ links.
var videoIDRe = regexp.MustCompile(`(?:v=|/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the first video ID out of a raw link, left to right.
// The second return is false when the link carries no recognizable ID;
// callers must check it before using the value.
func ExtractVideoID(link string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}
