package theme

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// LoadVSCode reads a VS Code color theme JSON file: top-level "colors"
// for the editor palette and "tokenColors" rules mapped through the
// scope table. A missing file returns (nil, nil).
func LoadVSCode(path string) (*Theme, error) {
	data, err := readThemeFile(path)
	if err != nil || data == nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: path, Message: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	name := root.Get("name").String()
	if name == "" {
		return nil, ErrNoThemeName
	}

	t := &Theme{
		Name:          name,
		CaptureStyles: make(map[capture.Name]style.Style),
	}

	palette := []struct {
		key   string
		dst   *style.Color
		field string
	}{
		{"editor.background", &t.Background, "colors.editor\\.background"},
		{"editor.foreground", &t.Foreground, "colors.editor\\.foreground"},
		{"editor.selectionBackground", &t.Selection, "colors.editor\\.selectionBackground"},
		{"editorCursor.foreground", &t.Cursor, "colors.editorCursor\\.foreground"},
		{"editor.lineHighlightBackground", &t.LineHighlight, "colors.editor\\.lineHighlightBackground"},
	}
	for _, p := range palette {
		c, err := parseColor(path, p.key, root.Get(p.field).String())
		if err != nil {
			return nil, err
		}
		*p.dst = c
	}

	var parseErr error
	root.Get("tokenColors").ForEach(func(_, rule gjson.Result) bool {
		fg, err := parseColor(path, "tokenColors.settings.foreground",
			rule.Get("settings.foreground").String())
		if err != nil {
			parseErr = err
			return false
		}

		fontStyle := rule.Get("settings.fontStyle").String()
		s := captureStyle(fg, style.ColorDefault,
			strings.Contains(fontStyle, "bold"),
			strings.Contains(fontStyle, "italic"),
			strings.Contains(fontStyle, "underline"))

		scope := rule.Get("scope")
		if scope.IsArray() {
			for _, sc := range scope.Array() {
				t.CaptureStyles[captureNameForScope(sc.String())] = s
			}
			return true
		}
		// A scalar scope may still hold a comma-separated list.
		for _, sc := range strings.Split(scope.String(), ",") {
			if sc = strings.TrimSpace(sc); sc != "" {
				t.CaptureStyles[captureNameForScope(sc)] = s
			}
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return t, nil
}

// ExportVSCode serializes a theme to the VS Code JSON layout. Capture
// names export as scopes unchanged; editors re-importing the file get an
// equivalent theme back.
func ExportVSCode(t *Theme) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "name", t.Name); err != nil {
		return nil, err
	}

	palette := []struct {
		key string
		c   style.Color
	}{
		{"editor\\.background", t.Background},
		{"editor\\.foreground", t.Foreground},
		{"editor\\.selectionBackground", t.Selection},
		{"editorCursor\\.foreground", t.Cursor},
		{"editor\\.lineHighlightBackground", t.LineHighlight},
	}
	for _, p := range palette {
		if p.c.IsDefault() {
			continue
		}
		if out, err = sjson.SetBytes(out, "colors."+p.key, p.c.Hex()); err != nil {
			return nil, err
		}
	}

	// Stable rule order: sorted capture names.
	names := make([]string, 0, len(t.CaptureStyles))
	for name := range t.CaptureStyles {
		names = append(names, string(name))
	}
	sort.Strings(names)

	for i, name := range names {
		s := t.CaptureStyles[capture.Name(name)]
		base := "tokenColors." + strconv.Itoa(i)
		if out, err = sjson.SetBytes(out, base+".scope", name); err != nil {
			return nil, err
		}
		if !s.Foreground.IsDefault() {
			if out, err = sjson.SetBytes(out, base+".settings.foreground", s.Foreground.Hex()); err != nil {
				return nil, err
			}
		}
		if fs := fontStyleString(s); fs != "" {
			if out, err = sjson.SetBytes(out, base+".settings.fontStyle", fs); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func fontStyleString(s style.Style) string {
	var parts []string
	if s.Attributes.Has(style.AttrBold) {
		parts = append(parts, "bold")
	}
	if s.Attributes.Has(style.AttrItalic) {
		parts = append(parts, "italic")
	}
	if s.Attributes.Has(style.AttrUnderline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}
