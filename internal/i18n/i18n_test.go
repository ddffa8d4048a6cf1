package i18n

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/relkit/internal/execx"
)

func TestParseStatistics(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{"partial", "53 translated messages, 82 untranslated messages.", "39%", true},
		{"with fuzzy", "100 translated messages, 4 fuzzy translations, 100 untranslated messages.", "50%", true},
		{"single untranslated", "99 translated messages, 1 untranslated message.", "99%", true},
		{"complete", "53 translated messages.", "100%", true},
		{"unknown", "msgfmt: error while opening \"xx.po\" for reading", "?", false},
		{"empty", "", "?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParseStatistics(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestProgress_ZeroUntranslated(t *testing.T) {
	assert.Equal(t, "100%", Progress{Known: true}.String())
	assert.Equal(t, "?", Progress{}.String())
}

type fakeRunner struct {
	stderr  string
	err     error
	gotDir  string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (execx.Output, error) {
	f.gotDir, f.gotArgs = dir, append([]string{name}, args...)
	return execx.Output{Stderr: []byte(f.stderr)}, f.err
}

func TestStatsCollector_Progress(t *testing.T) {
	runner := &fakeRunner{stderr: "53 translated messages, 82 untranslated messages.\n"}
	c := NewStatsCollector(runner, "msgfmt", "/src/po", quietLogger())

	p := c.Progress(context.Background(), "de")

	assert.Equal(t, "39%", p.String())
	assert.Equal(t, "/src/po", runner.gotDir)
	assert.Equal(t, []string{"msgfmt", "--statistics", "-o", "de.mo", "de.po"}, runner.gotArgs)
}

func TestStatsCollector_UnknownOutputIsLogged(t *testing.T) {
	var logs bytes.Buffer
	runner := &fakeRunner{stderr: "something else", err: errors.New("exit status 1")}
	c := NewStatsCollector(runner, "msgfmt", "/src/po", slog.New(slog.NewTextHandler(&logs, nil)))

	p := c.Progress(context.Background(), "xx")

	assert.Equal(t, "?", p.String())
	assert.Contains(t, logs.String(), "unknown output for language")
	assert.Contains(t, logs.String(), "lang=xx")
}

func TestSupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fr.po", "de.po", "pt_BR.po", "bleachbit.pot", "Makefile", "de.mo"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.po"), 0755))

	langs, err := SupportedLanguages(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr", "pt_BR"}, langs)
}

func TestSupportedLanguages_MissingDir(t *testing.T) {
	_, err := SupportedLanguages(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNativeName(t *testing.T) {
	overrides := map[string]string{"sr@latin": "srpski (latinica)"}

	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"de", "Deutsch", true},
		{"fr", "français", true},
		{"sr@latin", "srpski (latinica)", true},
		{"not a code", "not a code", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := NativeName(tt.code, overrides)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_Translate(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(dir, "bleachbit")
	writeMO(t, c.Path("de"), map[string]string{
		"":             "Content-Type: text/plain; charset=UTF-8\n",
		DefaultSummary: "Speicherplatz freigeben und Privatsphäre schützen",
		"Delete":       "Löschen",
	})

	got, ok := c.Translate("de", DefaultSummary)
	assert.True(t, ok)
	assert.Equal(t, "Speicherplatz freigeben und Privatsphäre schützen", got)

	got, ok = c.Translate("de", "Program to clean unnecessary files")
	assert.False(t, ok)
	assert.Equal(t, "Program to clean unnecessary files", got)

	_, ok = c.Translate("fr", DefaultSummary)
	assert.False(t, ok, "no catalog for fr")
}

type fixedStats map[string]Progress

func (f fixedStats) Progress(_ context.Context, lang string) Progress { return f[lang] }

type fixedTranslator map[string]string

func (f fixedTranslator) Translate(lang, msgid string) (string, bool) {
	tr, ok := f[lang]
	if !ok {
		return msgid, false
	}
	return tr, true
}

func TestReporter_RenderReport(t *testing.T) {
	r := &Reporter{
		Stats: fixedStats{
			"de": {Known: true, Translated: 53, Untranslated: 82},
			"fr": {Known: true, Translated: 10},
		},
		Translator: fixedTranslator{"de": "Speicher <frei>"},
		Summary:    DefaultSummary,
		Logger:     quietLogger(),
	}

	rows := r.Rows(context.Background(), []string{"de", "fr", "xx-invalid-code"})
	require.Len(t, rows, 3)
	assert.Equal(t, "Deutsch", rows[0].Name)
	assert.Equal(t, "?", rows[2].Progress.String())

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, DefaultSummary, rows))
	out := buf.String()

	assert.Contains(t, out, `<td>"Free space and maintain privacy"</td>`)
	assert.Contains(t, out, "<tr lang=\"de\">\n<td>de</td>\n<td>Deutsch</td>\n<td>39%</td>\n<td>Speicher &lt;frei&gt;</td>\n</tr>")
	assert.Contains(t, out, "<td>100%</td>\n<td>&nbsp;</td>")
	assert.Contains(t, out, "<td>?</td>")
	assert.Contains(t, out, "</table>\n</body>\n</html>\n")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeMO writes a minimal little-endian GNU .mo file.
func writeMO(t *testing.T, path string, messages map[string]string) {
	t.Helper()

	ids := make([]string, 0, len(messages))
	for id := range messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	const headerSize = 28
	n := uint32(len(ids))
	origTable := uint32(headerSize)
	transTable := origTable + 8*n
	dataStart := transTable + 8*n

	var data bytes.Buffer
	origs := make([][2]uint32, n)
	for i, id := range ids {
		origs[i] = [2]uint32{uint32(len(id)), dataStart + uint32(data.Len())}
		data.WriteString(id)
		data.WriteByte(0)
	}
	trans := make([][2]uint32, n)
	for i, id := range ids {
		s := messages[id]
		trans[i] = [2]uint32{uint32(len(s)), dataStart + uint32(data.Len())}
		data.WriteString(s)
		data.WriteByte(0)
	}

	var buf bytes.Buffer
	for _, v := range []uint32{0x950412de, 0, n, origTable, transTable, 0, dataStart} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	for _, e := range origs {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, e))
	}
	for _, e := range trans {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, e))
	}
	buf.Write(data.Bytes())

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}
