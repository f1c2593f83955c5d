package webserver

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_recap/internal/engine/sources"
)

// oneSegmentService is a caption service whose default resolution always
// yields a single "test content" segment.
type oneSegmentService struct{}

func (oneSegmentService) Transcript(context.Context, string) ([]sources.Segment, error) {
	return []sources.Segment{{Text: "test content"}}, nil
}

func (oneSegmentService) ListTracks(context.Context, string) ([]sources.Track, error) {
	return nil, nil
}

func (oneSegmentService) FetchTrack(context.Context, string, sources.Track) ([]sources.Segment, error) {
	return nil, nil
}

func newTestApp(t *testing.T, docx bool) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	Register(app, Deps{
		Fetch: sources.Fetcher{Service: oneSegmentService{}}.TranscriptText,
		Summarize: func(_ context.Context, transcript string) (string, error) {
			require.Equal(t, " test content", transcript)
			return "Summary: test", nil
		},
		DocxExport: docx,
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, string, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	headers := map[string]string{
		"Content-Type":        resp.Header.Get("Content-Type"),
		"Content-Disposition": resp.Header.Get("Content-Disposition"),
	}
	return resp.StatusCode, string(body), headers
}

func TestSummarizeEndToEnd(t *testing.T) {
	app := newTestApp(t, true)

	status, body, _ := postForm(t, app, "/summarize", url.Values{
		"link": {"https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Summary: test")
	assert.Contains(t, body, "http://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg")
	assert.Contains(t, body, "/download/text")
	assert.Contains(t, body, "/download/docx")
}

func TestSummarizeEmptyLink(t *testing.T) {
	app := newTestApp(t, true)

	status, body, _ := postForm(t, app, "/summarize", url.Values{"link": {""}})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Please provide a valid YouTube link.")
	assert.NotContains(t, body, "Summary: test")
}

func TestDownloadText(t *testing.T) {
	app := newTestApp(t, true)

	status, body, headers := postForm(t, app, "/download/text", url.Values{
		"summary": {"Summary: test"},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Summary: test", body)
	assert.Contains(t, headers["Content-Type"], "text/plain")
	assert.Contains(t, headers["Content-Disposition"], "video_summary.txt")
}

func TestDownloadDocx(t *testing.T) {
	app := newTestApp(t, true)

	status, body, headers := postForm(t, app, "/download/docx", url.Values{
		"summary": {"Summary: test"},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, headers["Content-Type"], "officedocument.wordprocessingml.document")
	assert.Contains(t, headers["Content-Disposition"], "video_summary.docx")
	assert.True(t, strings.HasPrefix(body, "PK"), "payload must be a zip archive")
}

func TestDocxHiddenWhenUnavailable(t *testing.T) {
	app := newTestApp(t, false)

	status, body, _ := postForm(t, app, "/summarize", url.Values{
		"link": {"https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "/download/text")
	assert.NotContains(t, body, "/download/docx", "docx control must be hidden, not broken")

	status, _, _ = postForm(t, app, "/download/docx", url.Values{"summary": {"x"}})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, true)

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "llm_calls")
	assert.Contains(t, string(body), "transcript_requests")
}
