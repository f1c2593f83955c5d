// go_recap — YouTube video summarizer web UI.
//
// Fetches a video transcript via the Innertube caption service, summarizes it
// with a Gemini model through the OpenAI-compatible endpoint, and renders the
// result in the browser with text and Word-document downloads.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/anatolykoptev/go_recap/internal/engine"
	"github.com/anatolykoptev/go_recap/internal/engine/sources"
	"github.com/anatolykoptev/go_recap/internal/export"
	"github.com/anatolykoptev/go_recap/internal/webserver"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	httpPort := env.Str("HTTP_PORT", "8080")
	initEngine()

	docxOK := export.Probe()
	if !docxOK {
		slog.Warn("document builder unavailable, only text download will be offered")
	}

	slog.Info("starting go_recap",
		slog.String("version", version),
		slog.String("port", httpPort),
		slog.Bool("docx", docxOK),
	)

	app := fiber.New(fiber.Config{
		AppName:               "go_recap " + version,
		DisableStartupMessage: true,
	})
	webserver.Register(app, webserver.Deps{
		Fetch:       sources.FetchYouTubeTranscript,
		Summarize:   engine.Summarize,
		SaveSummary: engine.SaveSummary,
		DocxExport:  docxOK,
	})

	if err := app.Listen(":" + httpPort); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:          env.Str("LLM_API_KEY", env.Str("GOOGLE_API_KEY", "")),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-1.5-flash"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 16384),
		SummaryFile:        env.Str("SUMMARY_FILE", "video_content.txt"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	if c.LLMAPIKey == "" {
		slog.Warn("no LLM API key configured, summarization calls will fail")
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)
}
