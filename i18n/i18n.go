// Package i18n holds the translated confirmation sentences.
//
// Catalogs are gettext .po files embedded in the binary, so they are
// available in the browser where there is no file system to read from.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"
)

// DefaultLanguage is the language of the original books application.
const DefaultLanguage = "ru"

//go:embed locales/*.po
var locales embed.FS

// Catalog translates message ids for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang. Languages without a catalog get an empty
// one, which formats the message ids untranslated.
func Load(lang string) (*Catalog, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLanguage
	}

	c := &Catalog{lang: lang}
	buf, err := locales.ReadFile("locales/" + lang + ".po")
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %q", lang)
	}

	po := gotext.NewPo()
	po.Parse(buf)
	c.po = po
	return c, nil
}

// Language reports the catalog language.
func (c *Catalog) Language() string {
	return c.lang
}

// Get translates msgid and formats it with vars.
func (c *Catalog) Get(msgid string, vars ...any) string {
	if c == nil || c.po == nil {
		if len(vars) == 0 {
			return msgid
		}
		return fmt.Sprintf(msgid, vars...)
	}
	return c.po.Get(msgid, vars...)
}
