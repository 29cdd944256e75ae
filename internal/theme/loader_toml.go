package theme

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// tomlTheme mirrors the on-disk TOML theme layout.
type tomlTheme struct {
	Name     string                      `toml:"name"`
	Colors   tomlColors                  `toml:"colors"`
	Captures map[string]tomlCaptureStyle `toml:"captures"`
}

type tomlColors struct {
	Background    string `toml:"background"`
	Foreground    string `toml:"foreground"`
	Selection     string `toml:"selection"`
	Cursor        string `toml:"cursor"`
	LineHighlight string `toml:"line_highlight"`
}

type tomlCaptureStyle struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
}

// LoadTOML reads a theme from a TOML file. A missing file returns
// (nil, nil).
func LoadTOML(path string) (*Theme, error) {
	data, err := readThemeFile(path)
	if err != nil || data == nil {
		return nil, err
	}

	var file tomlTheme
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if file.Name == "" {
		return nil, ErrNoThemeName
	}

	t := &Theme{
		Name:          file.Name,
		CaptureStyles: make(map[capture.Name]style.Style, len(file.Captures)),
	}

	palette := []struct {
		field string
		hex   string
		dst   *style.Color
	}{
		{"colors.background", file.Colors.Background, &t.Background},
		{"colors.foreground", file.Colors.Foreground, &t.Foreground},
		{"colors.selection", file.Colors.Selection, &t.Selection},
		{"colors.cursor", file.Colors.Cursor, &t.Cursor},
		{"colors.line_highlight", file.Colors.LineHighlight, &t.LineHighlight},
	}
	for _, p := range palette {
		c, err := parseColor(path, p.field, p.hex)
		if err != nil {
			return nil, err
		}
		*p.dst = c
	}

	for name, cs := range file.Captures {
		fg, err := parseColor(path, "captures."+name+".fg", cs.Fg)
		if err != nil {
			return nil, err
		}
		bg, err := parseColor(path, "captures."+name+".bg", cs.Bg)
		if err != nil {
			return nil, err
		}
		t.CaptureStyles[capture.Name(name)] = captureStyle(fg, bg, cs.Bold, cs.Italic, cs.Underline)
	}

	return t, nil
}
