package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveSummaryOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_content.txt")
	Init(Config{SummaryFile: path})

	if err := SaveSummary("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SaveSummary("second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}
}

func TestSaveSummaryDisabled(t *testing.T) {
	Init(Config{})
	if err := SaveSummary("anything"); err != nil {
		t.Errorf("unexpected error with no summary file configured: %v", err)
	}
}
