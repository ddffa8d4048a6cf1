package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// SupportedLanguages lists the language codes that have a <code>.po file in
// poDir, sorted.
func SupportedLanguages(poDir string) ([]string, error) {
	entries, err := os.ReadDir(poDir)
	if err != nil {
		return nil, fmt.Errorf("reading po dir: %w", err)
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".po" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs, nil
}

// NativeName returns the name of the language in itself ("Deutsch" for de).
// overrides win over the CLDR data; codes neither knows return the code
// itself and false.
func NativeName(code string, overrides map[string]string) (string, bool) {
	if name, ok := overrides[code]; ok {
		return name, true
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code, false
	}
	name := display.Self.Name(tag)
	if name == "" {
		return code, false
	}
	return name, true
}
