package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"treedit/internal/config"
	"treedit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML style sheet
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const (
	overrideYAML = `
theme: ocean
colors:
  primary: "#FF00FF"
sidebar:
  width: 40
  show_hidden: false
editor:
  highlight_style: dracula
`
	invalidSyntaxYAML = `
sidebar:
  width: [40
`
	invalidWidthYAML = `
sidebar:
  width: 3
`
	unknownThemeYAML = `
theme: neon
`
)

func TestLoadStyleSheetFile(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		s, err := config.LoadStyleSheetFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), s)
		assert.Equal(t, "default", s.Theme)
		assert.Equal(t, 32, s.Sidebar.Width)
		assert.True(t, s.Sidebar.Visible)
		assert.True(t, s.Sidebar.ShowHidden)
		assert.Equal(t, "monokai", s.Editor.HighlightStyle)
		assert.Equal(t, "treedit", s.Header.Title)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		s, err := config.LoadStyleSheetFile(createTestYAML(t, ""))
		require.NoError(t, err)
		assert.Equal(t, config.New(), s)
	})

	t.Run("overrides merge over the preset", func(t *testing.T) {
		s, err := config.LoadStyleSheetFile(createTestYAML(t, overrideYAML))
		require.NoError(t, err)

		ocean := config.GetPalette("ocean")
		assert.Equal(t, "ocean", s.Theme)
		assert.Equal(t, "#FF00FF", s.Colors.Primary)
		assert.Equal(t, ocean.Border, s.Colors.Border)
		assert.Equal(t, ocean.Accent, s.Colors.Accent)
		assert.Equal(t, 40, s.Sidebar.Width)
		assert.False(t, s.Sidebar.ShowHidden)
		assert.True(t, s.Sidebar.Visible, "unset keys keep defaults")
		assert.Equal(t, "dracula", s.Editor.HighlightStyle)
		assert.True(t, s.Editor.LineNumbers)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadStyleSheetFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("sidebar too narrow", func(t *testing.T) {
		_, err := config.LoadStyleSheetFile(createTestYAML(t, invalidWidthYAML))
		require.Error(t, err)
		var ce *errors.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "sidebar.width", ce.Param())
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := config.LoadStyleSheetFile(createTestYAML(t, unknownThemeYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neon")
	})
}

func TestValidate(t *testing.T) {
	var nilSheet *config.StyleSheet
	assert.Error(t, nilSheet.Validate())

	s := config.New()
	require.NoError(t, s.Validate())

	s.Editor.HighlightStyle = ""
	assert.Error(t, s.Validate())
}

func TestThemes(t *testing.T) {
	names := config.ListThemes()
	assert.Equal(t, []string{"dark", "default", "light", "monochrome", "ocean", "sunset"}, names)

	for _, name := range names {
		p := config.GetPalette(name)
		assert.NotEmpty(t, p.Primary, name)
		assert.NotEmpty(t, p.Accent, name)
	}

	assert.Equal(t, config.GetPalette("default"), config.GetPalette("no-such-theme"))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("treedit", "style.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestExcludePatterns(t *testing.T) {
	path := createTestYAML(t, `
sidebar:
  exclude: ["*.pyc", "node_modules", "{build,dist}"]
`)
	sheet, err := config.LoadStyleSheetFile(path)
	require.NoError(t, err)

	patterns, err := sheet.ExcludePatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 3)
	assert.True(t, patterns[0].Match("cache.pyc"))
	assert.False(t, patterns[0].Match("main.py"))
	assert.True(t, patterns[2].Match("dist"))

	bad := createTestYAML(t, "sidebar:\n  exclude: [\"[unclosed\"]\n")
	_, err = config.LoadStyleSheetFile(bad)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
	assert.Contains(t, err.Error(), "sidebar.exclude")
}
