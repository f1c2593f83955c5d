package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	PageViews          atomic.Int64
	SummarizeRequests  atomic.Int64
	TranscriptRequests atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	TextExports        atomic.Int64
	DocxExports        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"page_views":          metrics.PageViews.Load(),
		"summarize_requests":  metrics.SummarizeRequests.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"text_exports":        metrics.TextExports.Load(),
		"docx_exports":        metrics.DocxExports.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"page_views", "summarize_requests", "transcript_requests",
		"llm_calls", "llm_errors",
		"text_exports", "docx_exports",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrPageViews()         { metrics.PageViews.Add(1) }
func IncrSummarizeRequests() { metrics.SummarizeRequests.Add(1) }
func IncrLLMCalls()          { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()         { metrics.LLMErrors.Add(1) }
func IncrTextExports()       { metrics.TextExports.Add(1) }
func IncrDocxExports()       { metrics.DocxExports.Add(1) }

// IncrTranscriptRequests increments the transcript counter for the sources
// sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
