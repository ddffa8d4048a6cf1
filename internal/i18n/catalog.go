package i18n

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Translator looks up the translation of msgid for lang.
type Translator interface {
	Translate(lang, msgid string) (string, bool)
}

// Catalog reads compiled catalogs laid out as
// <dir>/<lang>/LC_MESSAGES/<domain>.mo.
type Catalog struct {
	dir    string
	domain string
}

// NewCatalog creates a catalog over a locale directory.
func NewCatalog(dir, domain string) *Catalog {
	return &Catalog{dir: dir, domain: domain}
}

// Path returns the .mo file for lang.
func (c *Catalog) Path(lang string) string {
	return filepath.Join(c.dir, lang, "LC_MESSAGES", c.domain+".mo")
}

// Translate returns msgid translated into lang. The second result is false
// when there is no catalog or the message is untranslated.
func (c *Catalog) Translate(lang, msgid string) (string, bool) {
	path := c.Path(lang)
	if _, err := os.Stat(path); err != nil {
		return msgid, false
	}

	mo := gotext.NewMo()
	mo.ParseFile(path)
	tr := mo.Get(msgid)
	return tr, tr != msgid && tr != ""
}
