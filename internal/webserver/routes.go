// Package webserver renders the summarizer UI and serves the export
// downloads on a fiber app.
package webserver

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/anatolykoptev/go_recap/internal/engine"
	"github.com/anatolykoptev/go_recap/internal/export"
)

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>YouTube Transcript</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.error { color: #b00020; }
.info { color: #555; }
.summary { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; border-radius: 4px; }
form.download { display: inline-block; margin-right: 1rem; }
</style>
</head>
<body>
<h1>YouTube Transcript</h1>
<form method="post" action="/summarize">
  <input type="text" name="link" size="60" placeholder="Enter YouTube Video Link" value="{{.Link}}">
  <button type="submit">Get Content</button>
</form>
{{if .ErrMessage}}
<p class="error">{{.ErrMessage}}</p>
{{if .Guidance}}<p class="info">{{.Guidance}}</p>{{end}}
{{end}}
{{if .Done}}
<h2>Blog Content:</h2>
{{if .ThumbnailURL}}
<p><img src="{{.ThumbnailURL}}" alt="video thumbnail" width="480"></p>
{{else if .ThumbError}}
<p class="error">{{.ThumbError}}</p>
{{end}}
<div class="summary">{{.Summary}}</div>
<p>
<form class="download" method="post" action="/download/text">
  <input type="hidden" name="summary" value="{{.Summary}}">
  <button type="submit">Download as Text</button>
</form>
{{if .DocxExport}}
<form class="download" method="post" action="/download/docx">
  <input type="hidden" name="summary" value="{{.Summary}}">
  <button type="submit">Download as Word Document</button>
</form>
{{end}}
</p>
{{end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// pageView feeds the page template: the echoed input plus the outcome.
type pageView struct {
	Link string
	Outcome
}

// Register mounts all routes on the fiber app.
func Register(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		engine.IncrPageViews()
		return render(c, pageView{Outcome: Outcome{State: StateIdle, DocxExport: deps.DocxExport}})
	})

	app.Post("/summarize", func(c *fiber.Ctx) error {
		engine.IncrSummarizeRequests()
		link := c.FormValue("link")
		out := deps.Run(c.Context(), link)
		slog.Info("summarize action",
			slog.String("state", out.State.String()),
			slog.String("video_id", out.VideoID),
		)
		return render(c, pageView{Link: link, Outcome: out})
	})

	app.Post("/download/text", func(c *fiber.Ctx) error {
		engine.IncrTextExports()
		c.Attachment("video_summary.txt")
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString(c.FormValue("summary"))
	})

	app.Post("/download/docx", func(c *fiber.Ctx) error {
		if !deps.DocxExport {
			return fiber.ErrNotFound
		}
		data, err := export.BuildDocx(c.FormValue("summary"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		engine.IncrDocxExports()
		c.Attachment("video_summary.docx")
		c.Set(fiber.HeaderContentType, mimeDocx)
		return c.Send(data)
	})

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendString(engine.FormatMetrics())
	})
}

func render(c *fiber.Ctx, v pageView) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, v); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
