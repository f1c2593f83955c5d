// Package export builds the downloadable artifacts offered with a summary.
package export

import (
	"bytes"
	"fmt"

	"github.com/gomutex/godocx"
)

// DocHeading is the top-level heading of every exported document.
const DocHeading = "YouTube Video Summary"

// BuildDocx serializes the summary into a Word document: the fixed heading
// followed by one paragraph holding the summary verbatim. No line splitting,
// no markdown interpretation.
func BuildDocx(summary string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}
	if _, err := doc.AddHeading(DocHeading, 0); err != nil {
		return nil, fmt.Errorf("add heading: %w", err)
	}
	doc.AddParagraph(summary)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

// Probe reports whether document export works in this build. Resolved once
// at startup; when false the docx control is hidden entirely rather than
// failing at click time.
func Probe() bool {
	_, err := BuildDocx("probe")
	return err == nil
}
