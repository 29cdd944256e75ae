package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dimchansky/utfbom"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// Load reads a theme file, choosing the loader by extension. A missing
// file is not an error: Load returns (nil, nil) so callers fall back to
// defaults, matching the config loader convention.
func Load(path string) (*Theme, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".json":
		return LoadVSCode(path)
	case ".yaml", ".yml":
		return LoadBase16(path)
	case ".lua":
		return LoadLua(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// readThemeFile reads a theme file with BOM tolerance. Returns (nil, nil)
// when the file does not exist.
func readThemeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(utfbom.SkipOnly(f))
	if err != nil {
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return data, nil
}

// parseColor parses a hex color field, treating an empty string as the
// default color.
func parseColor(path, field, hex string) (style.Color, error) {
	if hex == "" {
		return style.ColorDefault, nil
	}
	c, err := style.FromHex(hex)
	if err != nil {
		return style.Color{}, &ParseError{
			Path:    path,
			Message: fmt.Sprintf("field %s: %v", field, err),
			Err:     err,
		}
	}
	return c, nil
}

// captureStyle assembles a style from parsed pieces.
func captureStyle(fg, bg style.Color, bold, italic, underline bool) style.Style {
	s := style.New(fg).WithBackground(bg)
	if bold {
		s = s.Bold()
	}
	if italic {
		s = s.Italic()
	}
	if underline {
		s = s.Underline()
	}
	return s
}

// scopeMapping translates TextMate-style scopes to capture names. Longest
// prefix wins; unmapped scopes pass through as capture names unchanged,
// so themes can style grammar-specific captures directly.
var scopeMapping = []struct {
	scope string
	name  capture.Name
}{
	{"comment", capture.Comment},
	{"string.escape", capture.StringEscape},
	{"constant.character.escape", capture.StringEscape},
	{"string", capture.String},
	{"constant.numeric", capture.Number},
	{"constant.language.boolean", capture.Boolean},
	{"constant.language", capture.Constant},
	{"constant", capture.Constant},
	{"keyword.operator", capture.Operator},
	{"keyword", capture.Keyword},
	{"storage", capture.Keyword},
	{"punctuation.bracket", capture.PunctuationBracket},
	{"punctuation", capture.Punctuation},
	{"entity.name.function", capture.Function},
	{"support.function", capture.FunctionBuiltin},
	{"entity.name.type", capture.Type},
	{"support.type", capture.TypeBuiltin},
	{"variable.parameter", capture.VariableParameter},
	{"variable", capture.Variable},
	{"entity.name.tag", capture.Tag},
	{"entity.other.attribute-name", capture.Attribute},
	{"invalid", capture.Invalid},
}

// captureNameForScope maps a TextMate scope to a capture name.
func captureNameForScope(scope string) capture.Name {
	best := capture.Name(scope)
	bestLen := -1
	for _, m := range scopeMapping {
		if scope == m.scope || strings.HasPrefix(scope, m.scope+".") {
			if len(m.scope) > bestLen {
				best = m.name
				bestLen = len(m.scope)
			}
		}
	}
	return best
}
