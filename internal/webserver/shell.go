package webserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_recap/internal/engine/sources"
)

// State identifies where a single summarize action is in its linear pipeline.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateFetchingTranscript
	StateSummarizing
	StateDisplaying
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateFetchingTranscript:
		return "fetching_transcript"
	case StateSummarizing:
		return "summarizing"
	case StateDisplaying:
		return "displaying"
	case StateError:
		return "error"
	}
	return "unknown"
}

const (
	msgEmptyLink = "Please provide a valid YouTube link."
	msgBadLink   = "Invalid YouTube video URL. Could not extract video ID."
	msgGuidance  = "Try another video or check if the video has captions enabled."
)

// Deps are the pipeline collaborators, injectable for tests.
type Deps struct {
	Fetch       func(ctx context.Context, videoID string) (string, error)
	Summarize   func(ctx context.Context, transcript string) (string, error)
	SaveSummary func(summary string) error
	DocxExport  bool // resolved once at startup; hides the docx control when false
}

// Outcome is the terminal result of one action: Displaying with a summary,
// or Error with a user-facing message.
type Outcome struct {
	State        State
	VideoID      string
	ThumbnailURL string
	Summary      string
	ErrMessage   string
	Guidance     string
	ThumbError   string // inline thumbnail problem; summary is still shown
	DocxExport   bool
}

// Done reports whether the action reached the displaying state.
func (o Outcome) Done() bool { return o.State == StateDisplaying }

func errOutcome(msg string) Outcome {
	return Outcome{
		State:      StateError,
		ErrMessage: fmt.Sprintf("An error occurred: %s", msg),
		Guidance:   msgGuidance,
	}
}

func step(s State) {
	slog.Debug("pipeline state", slog.String("state", s.String()))
}

// Run drives one user action through the pipeline. Each call is independent;
// nothing persists across actions besides process configuration.
func (d Deps) Run(ctx context.Context, link string) Outcome {
	step(StateValidating)
	if strings.TrimSpace(link) == "" {
		return Outcome{State: StateError, ErrMessage: msgEmptyLink}
	}

	step(StateFetchingTranscript)
	videoID, ok := sources.ExtractVideoID(link)
	if !ok {
		return errOutcome(msgBadLink)
	}
	transcript, err := d.Fetch(ctx, videoID)
	if err != nil {
		return errOutcome(err.Error())
	}

	step(StateSummarizing)
	summary, err := d.Summarize(ctx, transcript)
	if err != nil {
		return errOutcome(err.Error())
	}

	if d.SaveSummary != nil {
		if err := d.SaveSummary(summary); err != nil {
			slog.Warn("summary file write failed", slog.Any("error", err))
		}
	}

	step(StateDisplaying)
	// The thumbnail is best-effort and never discards the already-computed
	// summary.
	out := Outcome{State: StateDisplaying, Summary: summary, DocxExport: d.DocxExport}
	if id, ok := sources.ExtractVideoID(link); ok {
		out.VideoID = id
		out.ThumbnailURL = fmt.Sprintf("http://img.youtube.com/vi/%s/0.jpg", id)
	} else {
		out.ThumbError = msgBadLink
	}
	return out
}
