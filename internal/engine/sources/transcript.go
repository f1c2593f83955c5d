package sources

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_recap/internal/engine"
)

// ErrNoTranscript is the unified failure for the whole fallback chain.
// The message doubles as end-user guidance.
var ErrNoTranscript = errors.New(`no transcript available. This might be because:
1. Subtitles are disabled for this video
2. The video is private or age-restricted
3. The video doesn't have any captions
Please try another video or contact the video owner.`)

// Fetcher resolves a video ID to its transcript text using a two-attempt
// strategy: default-language fetch first, then explicit track selection.
// No retries beyond that, no caching across calls.
type Fetcher struct {
	Service CaptionService
}

// TranscriptText fetches the transcript and joins the segment texts in
// original order, one leading space per segment.
func (f Fetcher) TranscriptText(ctx context.Context, videoID string) (string, error) {
	engine.IncrTranscriptRequests()

	segs, err := f.Service.Transcript(ctx, videoID)
	if err != nil {
		slog.Warn("youtube: default transcript fetch failed, selecting a track",
			slog.String("id", videoID), slog.Any("err", err))
		segs, err = f.fromTrackList(ctx, videoID)
		if err != nil {
			slog.Warn("youtube: track selection failed",
				slog.String("id", videoID), slog.Any("err", err))
			return "", ErrNoTranscript
		}
	}
	if len(segs) == 0 {
		return "", ErrNoTranscript
	}
	return JoinSegments(segs), nil
}

// fromTrackList enumerates the available tracks and fetches the English one
// when present, falling back to the first available track of any language.
func (f Fetcher) fromTrackList(ctx context.Context, videoID string) ([]Segment, error) {
	tracks, err := f.Service.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks listed")
	}
	if en, ok := pickEnglish(tracks); ok {
		segs, err := f.Service.FetchTrack(ctx, videoID, en)
		if err == nil {
			return segs, nil
		}
		slog.Warn("youtube: english track fetch failed, using first available",
			slog.String("id", videoID), slog.Any("err", err))
	}
	return f.Service.FetchTrack(ctx, videoID, tracks[0])
}

// pickEnglish prefers a manual English track over an auto-generated one.
func pickEnglish(tracks []Track) (Track, bool) {
	for _, t := range tracks {
		if strings.HasPrefix(t.Language, "en") && !t.Auto {
			return t, true
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.Language, "en") {
			return t, true
		}
	}
	return Track{}, false
}

// JoinSegments concatenates segment texts with a leading space each.
// Order is significant: it reconstructs the coherent transcript.
func JoinSegments(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteByte(' ')
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// FetchYouTubeTranscript fetches the transcript for a YouTube video using the
// live Innertube caption service.
func FetchYouTubeTranscript(ctx context.Context, videoID string) (string, error) {
	return Fetcher{Service: Innertube{}}.TranscriptText(ctx, videoID)
}
