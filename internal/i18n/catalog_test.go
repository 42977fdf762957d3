package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedLocales(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	langs := c.Languages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "fr")
	assert.Contains(t, langs, "ar")
	assert.Equal(t, "en", langs[0], "default language must come first")
}

func TestCatalog_T(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Action cancelled.", c.T("en", "cancelled", nil))
	assert.Equal(t, "Action annulée.", c.T("fr", "cancelled", nil))

	got := c.T("en", "welcome_new", map[string]string{"name": "Sami"})
	assert.Equal(t, "Hi Sami! Pick your language to continue.", got)
}

func TestCatalog_T_Fallbacks(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// Unknown language falls back to the default language.
	assert.Equal(t, c.T("en", "cancelled", nil), c.T("xx", "cancelled", nil))
	// Unknown key surfaces as the key itself.
	assert.Equal(t, "no_such_key", c.T("en", "no_such_key", nil))
}

func TestCatalog_Match(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []struct {
		hint string
		want string
	}{
		{"fr", "fr"},
		{"fr-DZ", "fr"},
		{"fr_DZ", "fr"},
		{"ar", "ar"},
		{"en-US", "en"},
		{"", "en"},
		{"not a tag", "en"},
		{"de", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Match(tt.hint), "hint %q", tt.hint)
	}
}

func TestCatalog_BaseName(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Binary (1/0)", c.BaseName("en", 2))
	assert.Equal(t, "Octal (0/7)", c.BaseName("en", 8))
	assert.Equal(t, "Décimal (0/9)", c.BaseName("fr", 10))
	assert.Equal(t, "Hexadecimal (0/15)", c.BaseName("en", 16))
}

func TestCatalog_Reload(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("en.yaml", "cancelled: \"Stopped.\"\nlanguage_name: \"English\"\n")
	write("fr.yaml", "cancelled: \"Stoppé.\"\nlanguage_name: \"Français\"\n")

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "Stopped.", c.T("en", "cancelled", nil))

	write("en.yaml", "cancelled: \"Halted.\"\nlanguage_name: \"English\"\n")
	require.NoError(t, c.Reload(dir))
	assert.Equal(t, "Halted.", c.T("en", "cancelled", nil))
}
