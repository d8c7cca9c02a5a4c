package locales

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/samber/oops"
	"golang.org/x/text/language"
)

//go:embed *.json
var localeFS embed.FS

// DefaultLanguage is used when the configured language has no message file.
const DefaultLanguage = "uz"

// Catalog resolves message IDs to text in one configured language.
type Catalog struct {
	localizer *i18n.Localizer
	lang      string
}

// New loads every embedded message file and returns a catalog for lang
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.MustParse(DefaultLanguage))
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(".")
	if err != nil {
		return nil, oops.With("context", "failed to read embedded locales").Wrap(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, entry.Name()); err != nil {
			return nil, oops.With("file", entry.Name(), "context", "failed to load message file").Wrap(err)
		}
	}

	if _, err := language.Parse(lang); err != nil {
		slog.Warn("Unknown bot language, using default", "language", lang, "default", DefaultLanguage)
		lang = DefaultLanguage
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
		lang:      lang,
	}, nil
}

// Language returns the language the catalog was created for
func (c *Catalog) Language() string {
	return c.lang
}

// Text returns the message for id, or id itself when no translation exists.
func (c *Catalog) Text(id string) string {
	return c.Format(id, nil)
}

// Format renders the message template for id with data.
func (c *Catalog) Format(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		slog.Error("Failed to localize message", "message_id", id, "language", c.lang, "error", err)
		return id
	}
	return msg
}
