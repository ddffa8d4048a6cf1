package i18n

import (
	"context"
	"embed"
	"html/template"
	"io"
	"log/slog"
)

// DefaultSummary is the phrase whose translation each row shows.
const DefaultSummary = "Free space and maintain privacy"

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

// Row is one language in the report. Summary is empty when the phrase is
// untranslated.
type Row struct {
	Code     string
	Name     string
	Progress Progress
	Summary  string
}

// ProgressSource measures one language.
type ProgressSource interface {
	Progress(ctx context.Context, lang string) Progress
}

// Reporter assembles report rows.
type Reporter struct {
	Stats       ProgressSource
	Translator  Translator
	NativeNames map[string]string
	Summary     string
	Logger      *slog.Logger
}

// Rows builds one row per language, in the given order.
func (r *Reporter) Rows(ctx context.Context, langs []string) []Row {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rows := make([]Row, 0, len(langs))
	for _, lang := range langs {
		name, ok := NativeName(lang, r.NativeNames)
		if !ok {
			logger.Warn("no native name for language", "lang", lang)
		}

		row := Row{
			Code:     lang,
			Name:     name,
			Progress: r.Stats.Progress(ctx, lang),
		}
		if tr, ok := r.Translator.Translate(lang, r.Summary); ok {
			row.Summary = tr
		}
		logger.Debug("measured language", "lang", lang, "progress", row.Progress.String())
		rows = append(rows, row)
	}
	return rows
}

// RenderReport writes the full HTML page with the status table.
func RenderReport(w io.Writer, summary string, rows []Row) error {
	return reportTemplate.Execute(w, struct {
		Summary string
		Rows    []Row
	}{summary, rows})
}
