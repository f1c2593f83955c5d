package engine

import (
	"fmt"
	"os"
)

// SaveSummary writes the most recent summary to the configured local file,
// overwriting any prior content. No versioning.
func SaveSummary(summary string) error {
	if cfg.SummaryFile == "" {
		return nil
	}
	if err := os.WriteFile(cfg.SummaryFile, []byte(summary), 0o644); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}
