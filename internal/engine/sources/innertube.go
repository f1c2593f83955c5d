package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_recap/internal/engine"
)

// YouTube Innertube caption access. The ANDROID /player endpoint lists the
// caption tracks for a video; each track's timedtext URL serves the timed
// segments as XML.

const (
	ytPlayerURL      = "https://www.youtube.com/youtubei/v1/player"
	ytAndroidVersion = "20.10.38"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"
)

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type innertubePlayerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// --- Timedtext XML types ---

type ytTimedText struct {
	Lines []ytLine `xml:"text"`
}

type ytLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// Segment is one timed fragment of spoken-word text, in original order.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Track describes one caption track available for a video.
type Track struct {
	Language string
	BaseURL  string
	Auto     bool
}

// CaptionService is the transcript provider surface the fetcher depends on.
type CaptionService interface {
	// Transcript fetches segments using the service's default language resolution.
	Transcript(ctx context.Context, videoID string) ([]Segment, error)
	// ListTracks enumerates the caption tracks available for the video.
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	// FetchTrack fetches the segments of one enumerated track.
	FetchTrack(ctx context.Context, videoID string, track Track) ([]Segment, error)
}

// Innertube implements CaptionService against the live Innertube API.
type Innertube struct{}

func (it Innertube) Transcript(ctx context.Context, videoID string) ([]Segment, error) {
	tracks, err := it.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	// Default resolution: the first usable track.
	return fetchTimedText(ctx, tracks[0].BaseURL)
}

func (it Innertube) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	tracks, err := it.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, Track{
			Language: t.LanguageCode,
			BaseURL:  t.BaseURL,
			Auto:     t.Kind == "asr",
		})
	}
	return out, nil
}

func (Innertube) FetchTrack(ctx context.Context, _ string, track Track) ([]Segment, error) {
	return fetchTimedText(ctx, track.BaseURL)
}

// needsPoToken reports whether a caption track URL requires a PoToken
// (browser-only). Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

func usableTracks(tracks []captionTrack) []captionTrack {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	return usable
}

// captionTracks calls the ANDROID Innertube /player endpoint and returns the
// usable caption tracks for the video.
func (Innertube) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytPlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}

	var playerResp innertubePlayerResp
	if err := json.NewDecoder(io.LimitReader(resp.Body, 3*1024*1024)).Decode(&playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	if playerResp.Captions == nil {
		if ps := playerResp.PlayabilityStatus; ps != nil && ps.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", ps.Reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := usableTracks(playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks)
	if len(tracks) == 0 {
		return nil, errors.New("no usable caption tracks")
	}
	return tracks, nil
}

// fetchTimedText fetches and parses a YouTube timedtext XML caption URL.
func fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// parseTimedText converts timedtext XML into ordered segments, stripping any
// markup left inside the caption lines.
func parseTimedText(body []byte) ([]Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	segs := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		segs = append(segs, Segment{
			Text:     engine.CleanHTML(line.Text),
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return segs, nil
}
