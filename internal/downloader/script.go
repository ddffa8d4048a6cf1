// Package downloader turns OBS package URLs into download jobs, written out
// as a wget script or fetched directly.
package downloader

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// DefaultScriptPath is where --make-download writes its script.
const DefaultScriptPath = "download_from_obs.sh"

// ScriptWriter writes jobs as wget commands, one per line.
type ScriptWriter struct {
	w io.Writer
}

// NewScriptWriter creates a new script writer.
func NewScriptWriter(w io.Writer) *ScriptWriter {
	return &ScriptWriter{w: w}
}

// Write emits "wget -nv -nc -O <dest> <url>" for every job, in order.
func (s *ScriptWriter) Write(jobs []Job) error {
	for _, job := range jobs {
		if _, err := fmt.Fprintf(s.w, "wget -nv -nc -O %s %s\n", job.DestPath, job.URL); err != nil {
			return err
		}
	}
	return nil
}

// WriteScriptFile renders the whole script before creating path, so a
// failed run leaves no partial script behind.
func WriteScriptFile(path string, jobs []Job) error {
	var buf bytes.Buffer
	if err := NewScriptWriter(&buf).Write(jobs); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("writing script %s: %w", path, err)
	}
	return nil
}
