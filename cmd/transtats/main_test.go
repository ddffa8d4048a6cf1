package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/relkit/internal/execx"
)

type statsRunner map[string]string

func (s statsRunner) Run(_ context.Context, _, _ string, args ...string) (execx.Output, error) {
	po := args[len(args)-1]
	return execx.Output{Stderr: []byte(s[strings.TrimSuffix(po, ".po")])}, nil
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fr.po", "de.po"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	configPath = filepath.Join(dir, "none.yaml")
	logLevel, logFormat = "error", "text"
	poDir, localeDir = dir, filepath.Join(dir, "locale")
	t.Cleanup(func() { poDir, localeDir = "", "" })

	runner := statsRunner{
		"de": "53 translated messages, 82 untranslated messages.",
		"fr": "garbage",
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, runReport(context.Background(), &stdout, &stderr, runner))

	out := stdout.String()
	assert.Less(t, strings.Index(out, `<tr lang="de">`), strings.Index(out, `<tr lang="fr">`))
	assert.Contains(t, out, "<td>39%</td>")
	assert.Contains(t, out, "<td>?</td>")
	assert.Equal(t, 2, strings.Count(out, "<td>&nbsp;</td>"))
}

func TestRunReport_MissingPODir(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "none.yaml")
	logLevel, logFormat = "error", "text"
	poDir = filepath.Join(dir, "missing")
	t.Cleanup(func() { poDir = "" })

	var stdout, stderr bytes.Buffer
	err := runReport(context.Background(), &stdout, &stderr, statsRunner{})
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}
