// Package i18n reports how far each translation of the application has
// progressed.
package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/frederic-klein/relkit/internal/execx"
)

var (
	// 53 translated messages, 82 untranslated messages.
	// Fuzzy counts in between are ignored.
	partialStats = regexp.MustCompile(`([0-9]+) translated messages.* ([0-9]+) untranslated message`)
	// 53 translated messages.
	completeStats = regexp.MustCompile(`([0-9]+) translated messages`)
)

// Progress is the translation state of one catalog. A zero Progress is
// unknown and prints as "?".
type Progress struct {
	Known        bool
	Translated   int
	Untranslated int
}

// String returns the rounded percentage translated, such as "39%".
func (p Progress) String() string {
	if !p.Known {
		return "?"
	}
	if p.Untranslated == 0 {
		return "100%"
	}
	pct := 100 * float64(p.Translated) / float64(p.Translated+p.Untranslated)
	return fmt.Sprintf("%.0f%%", pct)
}

// ParseStatistics reads the output of "msgfmt --statistics". The second
// result is false when the output matches neither known form.
func ParseStatistics(output string) (Progress, bool) {
	if m := partialStats.FindStringSubmatch(output); m != nil {
		translated, _ := strconv.Atoi(m[1])
		untranslated, _ := strconv.Atoi(m[2])
		return Progress{Known: true, Translated: translated, Untranslated: untranslated}, true
	}
	if m := completeStats.FindStringSubmatch(output); m != nil {
		translated, _ := strconv.Atoi(m[1])
		return Progress{Known: true, Translated: translated}, true
	}
	return Progress{}, false
}

// StatsCollector compiles <lang>.po files with msgfmt to measure them.
type StatsCollector struct {
	runner execx.Runner
	msgfmt string
	poDir  string
	logger *slog.Logger
}

// NewStatsCollector creates a collector running msgfmt inside poDir.
func NewStatsCollector(runner execx.Runner, msgfmt, poDir string, logger *slog.Logger) *StatsCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsCollector{runner: runner, msgfmt: msgfmt, poDir: poDir, logger: logger}
}

// Progress measures lang. Failures are logged and reported as unknown
// progress; they never stop the report.
func (c *StatsCollector) Progress(ctx context.Context, lang string) Progress {
	out, err := c.runner.Run(ctx, c.poDir, c.msgfmt, "--statistics", "-o", lang+".mo", lang+".po")
	if err != nil {
		c.logger.Warn("msgfmt failed", "lang", lang, "error", err)
	}

	p, ok := ParseStatistics(string(out.Stderr))
	if !ok {
		c.logger.Warn("unknown output for language", "lang", lang, "output", string(out.Stderr))
	}
	return p
}
