package snippet

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
)

//go:embed templates/snippet.html.tmpl
var templateFS embed.FS

var listTemplate = template.Must(template.ParseFS(templateFS, "templates/snippet.html.tmpl"))

// Emitter writes records as an HTML unordered list.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new snippet emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes one list item per record, in the given order.
func (e *Emitter) Emit(records []Record) error {
	return listTemplate.Execute(e.w, records)
}

// FileName derives the snippet file name from a header such as
// "Installation package" -> snippet_installation_package.html.
func FileName(header string) string {
	return "snippet_" + strings.ReplaceAll(strings.ToLower(header), " ", "_") + ".html"
}

// WriteFile renders records into path.
func WriteFile(path string, records []Record) error {
	var buf bytes.Buffer
	if err := NewEmitter(&buf).Emit(records); err != nil {
		return fmt.Errorf("rendering snippet: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing snippet %s: %w", path, err)
	}
	return nil
}
