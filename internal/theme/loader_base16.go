package theme

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// base16Scheme mirrors the base16 YAML scheme layout.
type base16Scheme struct {
	Scheme string `yaml:"scheme"`
	Author string `yaml:"author"`
	Base00 string `yaml:"base00"`
	Base01 string `yaml:"base01"`
	Base02 string `yaml:"base02"`
	Base03 string `yaml:"base03"`
	Base04 string `yaml:"base04"`
	Base05 string `yaml:"base05"`
	Base06 string `yaml:"base06"`
	Base07 string `yaml:"base07"`
	Base08 string `yaml:"base08"`
	Base09 string `yaml:"base09"`
	Base0A string `yaml:"base0A"`
	Base0B string `yaml:"base0B"`
	Base0C string `yaml:"base0C"`
	Base0D string `yaml:"base0D"`
	Base0E string `yaml:"base0E"`
	Base0F string `yaml:"base0F"`
}

// LoadBase16 reads a base16 YAML scheme and maps its sixteen-color
// palette onto capture styles following the base16 styling guide.
// A missing file returns (nil, nil).
func LoadBase16(path string) (*Theme, error) {
	data, err := readThemeFile(path)
	if err != nil || data == nil {
		return nil, err
	}

	var scheme base16Scheme
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if scheme.Scheme == "" {
		return nil, ErrNoThemeName
	}

	slots := map[string]string{
		"base00": scheme.Base00, "base01": scheme.Base01,
		"base02": scheme.Base02, "base03": scheme.Base03,
		"base04": scheme.Base04, "base05": scheme.Base05,
		"base06": scheme.Base06, "base07": scheme.Base07,
		"base08": scheme.Base08, "base09": scheme.Base09,
		"base0A": scheme.Base0A, "base0B": scheme.Base0B,
		"base0C": scheme.Base0C, "base0D": scheme.Base0D,
		"base0E": scheme.Base0E, "base0F": scheme.Base0F,
	}
	colors := make(map[string]style.Color, len(slots))
	for slot, hex := range slots {
		// base16 schemes conventionally omit the leading '#'.
		c, err := parseColor(path, slot, ensureHash(hex))
		if err != nil {
			return nil, err
		}
		colors[slot] = c
	}

	return &Theme{
		Name:          scheme.Scheme,
		Background:    colors["base00"],
		Foreground:    colors["base05"],
		Selection:     colors["base02"],
		Cursor:        colors["base05"],
		LineHighlight: colors["base01"],
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(colors["base03"]).Italic(),
			capture.String:             style.New(colors["base0B"]),
			capture.StringEscape:       style.New(colors["base0C"]),
			capture.Number:             style.New(colors["base09"]),
			capture.Boolean:            style.New(colors["base09"]),
			capture.Keyword:            style.New(colors["base0E"]),
			capture.Operator:           style.New(colors["base05"]),
			capture.Punctuation:        style.New(colors["base05"]),
			capture.PunctuationBracket: style.New(colors["base0F"]),
			capture.Function:           style.New(colors["base0D"]),
			capture.Type:               style.New(colors["base0A"]),
			capture.Variable:           style.New(colors["base08"]),
			capture.Constant:           style.New(colors["base09"]),
			capture.Property:           style.New(colors["base05"]),
			capture.Invalid:            style.New(colors["base08"]).Underline(),
		},
	}, nil
}

func ensureHash(hex string) string {
	if hex == "" || strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}
