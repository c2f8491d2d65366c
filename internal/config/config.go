package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"treedit/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// StyleSheet is treedit's only configuration: how the window looks.
// It is read once at startup and never reloaded.
type StyleSheet struct {
	Theme  string `yaml:"theme"` // Palette preset name
	Colors struct {
		Primary string `yaml:"primary"` // Header and cursor background
		Border  string `yaml:"border"`  // Pane borders
		Muted   string `yaml:"muted"`   // Gutter, footer descriptions
		Text    string `yaml:"text"`    // Plain file names
		Accent  string `yaml:"accent"`  // Directory names, focused border
	} `yaml:"colors"`
	Sidebar struct {
		Width      int  `yaml:"width"`       // Columns, borders included
		Visible    bool `yaml:"visible"`     // Initial visibility
		ShowHidden bool `yaml:"show_hidden"` // List dot-files
		// Exclude lists glob patterns; entries whose name matches one are
		// left out of the tree
		Exclude []string `yaml:"exclude"`
	} `yaml:"sidebar"`
	Editor struct {
		HighlightStyle string `yaml:"highlight_style"` // Chroma style name
		LineNumbers    bool   `yaml:"line_numbers"`
	} `yaml:"editor"`
	Header struct {
		Title string `yaml:"title"`
	} `yaml:"header"`
}

// Palette holds the colours a theme preset provides.
type Palette struct {
	Primary string
	Border  string
	Muted   string
	Text    string
	Accent  string
}

const (
	defaultSidebarWidth = 32
	minSidebarWidth     = 10
)

// DefaultPath returns $HOME/.config/treedit/style.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot locate home directory")
	}
	return filepath.Join(home, ".config", "treedit", "style.yaml"), nil
}

// LoadStyleSheet loads the style sheet at the default location.
func LoadStyleSheet() (*StyleSheet, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadStyleSheetFile(path)
}

// LoadStyleSheetFile loads a style sheet from path, merged over the
// defaults. A missing file yields the defaults.
func LoadStyleSheetFile(path string) (*StyleSheet, error) {
	s := defaultStyleSheet()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.NewConfigError("error reading style sheet", path, errors.ConfigNotFound, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.NewConfigError("error parsing style sheet", path, errors.InvalidConfig, err)
	}

	s.fillFromTheme()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// defaultStyleSheet returns the built-in look.
func defaultStyleSheet() *StyleSheet {
	s := &StyleSheet{}
	s.Theme = "default"
	s.Sidebar.Width = defaultSidebarWidth
	s.Sidebar.Visible = true
	s.Sidebar.ShowHidden = true
	s.Editor.HighlightStyle = "monokai"
	s.Editor.LineNumbers = true
	s.Header.Title = "treedit"
	return s
}

// New returns the default style sheet with its palette filled in.
func New() *StyleSheet {
	s := defaultStyleSheet()
	s.fillFromTheme()
	return s
}

// fillFromTheme sets every colour the file left empty from the preset.
// An unknown theme fills from the default palette; Validate reports it.
func (s *StyleSheet) fillFromTheme() {
	p := GetPalette(s.Theme)
	if s.Colors.Primary == "" {
		s.Colors.Primary = p.Primary
	}
	if s.Colors.Border == "" {
		s.Colors.Border = p.Border
	}
	if s.Colors.Muted == "" {
		s.Colors.Muted = p.Muted
	}
	if s.Colors.Text == "" {
		s.Colors.Text = p.Text
	}
	if s.Colors.Accent == "" {
		s.Colors.Accent = p.Accent
	}
}

// Validate checks the style sheet for values the UI cannot render.
func (s *StyleSheet) Validate() error {
	if s == nil {
		return errors.NewConfigError("nil style sheet", "", errors.InvalidConfig, nil)
	}
	if _, ok := themes[s.Theme]; !ok {
		return errors.NewConfigError("unknown theme", "theme", errors.InvalidConfig, errors.Newf("%q, want one of %s", s.Theme, strings.Join(ListThemes(), ", ")))
	}
	if s.Sidebar.Width < minSidebarWidth {
		return errors.NewConfigError("sidebar too narrow", "sidebar.width", errors.InvalidConfig,
			errors.Newf("%d < %d", s.Sidebar.Width, minSidebarWidth))
	}
	if _, err := s.ExcludePatterns(); err != nil {
		return err
	}
	if s.Editor.HighlightStyle == "" {
		return errors.NewConfigError("highlight style is required", "editor.highlight_style", errors.InvalidConfig, nil)
	}
	return nil
}

// ExcludePatterns compiles sidebar.exclude.
func (s *StyleSheet) ExcludePatterns() ([]glob.Glob, error) {
	patterns := make([]glob.Glob, 0, len(s.Sidebar.Exclude))
	for _, p := range s.Sidebar.Exclude {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("bad exclude pattern", "sidebar.exclude", errors.InvalidConfig,
				errors.Wrapf(err, "%q", p))
		}
		patterns = append(patterns, g)
	}
	return patterns, nil
}

var themes = map[string]Palette{
	"default": {
		Primary: "#4F4FB7",
		Border:  "#626262",
		Muted:   "#888888",
		Text:    "#D8DEE9",
		Accent:  "#81A1C1",
	},
	"dark": {
		Primary: "105",
		Border:  "238",
		Muted:   "243",
		Text:    "252",
		Accent:  "147",
	},
	"light": {
		Primary: "135",
		Border:  "250",
		Muted:   "245",
		Text:    "235",
		Accent:  "25",
	},
	"monochrome": {
		Primary: "245",
		Border:  "241",
		Muted:   "243",
		Text:    "252",
		Accent:  "255",
	},
	"ocean": {
		Primary: "31",
		Border:  "24",
		Muted:   "67",
		Text:    "153",
		Accent:  "51",
	},
	"sunset": {
		Primary: "208",
		Border:  "130",
		Muted:   "180",
		Text:    "223",
		Accent:  "203",
	},
}

// GetPalette returns the preset palette by name, or the default one.
func GetPalette(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes["default"]
}

// ListThemes returns the preset names in alphabetical order.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
