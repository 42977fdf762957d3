// Package i18n provides the localized message catalog for the
// bot-facing surfaces. The shipped locales (Arabic, French, English)
// are embedded; an external directory can override them, which the
// server watches for live edits.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

// DefaultLanguage is used when a user has no stored preference and
// their hint cannot be matched.
const DefaultLanguage = "en"

// Catalog holds all localized messages, keyed by language code then
// message key. Safe for concurrent use; Reload swaps the whole table.
type Catalog struct {
	mu      sync.RWMutex
	locales map[string]map[string]string

	matcher language.Matcher
	tags    []string
}

// Load builds a catalog from the embedded locale files.
func Load() (*Catalog, error) {
	c := &Catalog{}
	locales, err := parseLocaleFS(embedded, "locales")
	if err != nil {
		return nil, err
	}
	c.install(locales)
	return c, nil
}

// LoadDir builds a catalog from *.yaml files in dir, one file per
// language code. Used when a deployment overrides the shipped texts.
func LoadDir(dir string) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Reload(dir); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the catalog contents from dir.
func (c *Catalog) Reload(dir string) error {
	locales, err := parseLocaleFS(os.DirFS(dir), ".")
	if err != nil {
		return err
	}
	c.install(locales)
	return nil
}

func (c *Catalog) install(locales map[string]map[string]string) {
	codes := make([]string, 0, len(locales))
	tags := make([]language.Tag, 0, len(locales)+1)

	// The default language must come first: the matcher falls back to
	// its first tag.
	if _, ok := locales[DefaultLanguage]; ok {
		codes = append(codes, DefaultLanguage)
		tags = append(tags, language.Make(DefaultLanguage))
	}
	for code := range locales {
		if code == DefaultLanguage {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, language.Make(code))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.locales = locales
	c.tags = codes
	c.matcher = language.NewMatcher(tags)
}

func parseLocaleFS(fsys fs.FS, root string) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}

	locales := make(map[string]map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", name, err)
		}
		messages := make(map[string]string)
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", name, err)
		}
		locales[strings.TrimSuffix(name, ".yaml")] = messages
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("no locale files found under %s", root)
	}
	return locales, nil
}

// Languages returns the loaded language codes, default language first.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Match resolves a user-supplied language hint ("fr", "fr-DZ",
// "ar_DZ"...) to a loaded language code, falling back to the default.
func (c *Catalog) Match(hint string) string {
	c.mu.RLock()
	matcher := c.matcher
	codes := c.tags
	c.mu.RUnlock()

	if hint == "" || matcher == nil {
		return DefaultLanguage
	}
	tag, err := language.Parse(strings.ReplaceAll(hint, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No || index >= len(codes) {
		return DefaultLanguage
	}
	return codes[index]
}

// T returns the message for key in lang, with {placeholder} values
// substituted from args. Unknown languages fall back to the default
// language; unknown keys return the key itself so broken texts surface
// visibly instead of silently vanishing.
func (c *Catalog) T(lang, key string, args map[string]string) string {
	c.mu.RLock()
	messages, ok := c.locales[lang]
	if !ok {
		messages = c.locales[DefaultLanguage]
	}
	text, ok := messages[key]
	c.mu.RUnlock()
	if !ok {
		return key
	}
	for name, value := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// BaseName returns the localized display label for a numeral base.
func (c *Catalog) BaseName(lang string, base int) string {
	return c.T(lang, fmt.Sprintf("base_%d", base), nil)
}

// LanguageName returns the self-described name of a language ("Français").
func (c *Catalog) LanguageName(lang string) string {
	return c.T(lang, "language_name", nil)
}
