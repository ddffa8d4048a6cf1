// Package snippet builds the HTML list of package download links published
// on the website.
package snippet

import (
	"html/template"
	"log/slog"
	"regexp"
	"sort"

	"github.com/frederic-klein/relkit/internal/distro"
)

// DefaultBaseURL is the download host the links point at.
const DefaultBaseURL = "http://sourceforge.net/projects/bleachbit/files/"

var (
	skipPattern = regexp.MustCompile(`(bonus|(tar\.(bz2|lzma|gz)|zip|txt|txt\.asc|html)$)`)
	tagPattern  = regexp.MustCompile(`<[^>]*?>`)
)

// Users of Ubuntu derivatives look for their own distribution name, so
// these labels get an extra link to the same package.
var derivativeAliases = map[string]string{
	// Linux Mint 17 is based on Ubuntu Trusty
	"Ubuntu 14.04 LTS (Trusty Tahr)":  "Linux Mint 17 - 17.3 (Qiana/Rebecca/Rafaela/Rosa)",
	"Ubuntu 12.04 (Precise Pangolin)": "Linux Mint 13 LTS (Maya)",
}

// Record is one download link.
type Record struct {
	Text     string        // label without markup, the sort key
	Label    template.HTML // label as shown
	URL      string
	Filename string
}

// Skip reports whether filename is not an installable package: too short,
// an archive, a text or signature file, or a bonus download.
func Skip(filename string) bool {
	return len(filename) < 5 || skipPattern.MatchString(filename)
}

// StripTags removes HTML tags from s.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Build classifies filenames into records sorted by plain-text label.
// Skipped filenames are dropped; an unclassifiable package aborts.
func Build(filenames []string, baseURL string, logger *slog.Logger) ([]Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var records []Record
	add := func(label, url, filename string) {
		records = append(records, Record{
			Text:     StripTags(label),
			Label:    template.HTML(label),
			URL:      url,
			Filename: filename,
		})
	}

	for _, fn := range filenames {
		if Skip(fn) {
			logger.Debug("skipping file", "filename", fn)
			continue
		}
		label, err := distro.Label(fn)
		if err != nil {
			logger.Error("cannot classify package", "filename", fn, "error", err)
			return nil, err
		}
		url := baseURL + fn
		add(label, url, fn)
		if alias, ok := derivativeAliases[label]; ok {
			add(alias, url, fn)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Text < records[j].Text
	})
	return records, nil
}
