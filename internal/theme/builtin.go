package theme

import (
	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	comment := style.RGB(106, 153, 85)
	keyword := style.RGB(86, 156, 214)
	str := style.RGB(206, 145, 120)
	number := style.RGB(181, 206, 168)
	function := style.RGB(220, 220, 170)
	typ := style.RGB(78, 201, 176)
	variable := style.RGB(156, 220, 254)
	operator := style.RGB(212, 212, 212)
	invalid := style.RGB(244, 71, 71)

	return &Theme{
		Name:          "Default Dark",
		Background:    style.RGB(30, 30, 30),
		Foreground:    style.RGB(212, 212, 212),
		Selection:     style.RGB(64, 64, 128),
		Cursor:        style.RGB(255, 255, 255),
		LineHighlight: style.RGB(40, 40, 40),
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(comment).Italic(),
			capture.String:             style.New(str),
			capture.StringEscape:       style.New(style.RGB(215, 186, 125)),
			capture.Number:             style.New(number),
			capture.Boolean:            style.New(keyword),
			capture.Keyword:            style.New(keyword),
			capture.Operator:           style.New(operator),
			capture.Punctuation:        style.New(operator),
			capture.PunctuationBracket: style.New(style.RGB(255, 215, 0)),
			capture.Function:           style.New(function),
			capture.Type:               style.New(typ),
			capture.Variable:           style.New(variable),
			capture.Constant:           style.New(style.RGB(100, 200, 255)),
			capture.Property:           style.New(variable),
			capture.Invalid:            style.New(invalid).Underline(),
		},
	}
}

// DefaultLight returns the default light theme.
func DefaultLight() *Theme {
	comment := style.RGB(0, 128, 0)
	keyword := style.RGB(0, 0, 255)
	str := style.RGB(163, 21, 21)
	number := style.RGB(9, 134, 88)
	function := style.RGB(121, 94, 38)
	typ := style.RGB(38, 127, 153)
	variable := style.RGB(0, 16, 128)

	return &Theme{
		Name:          "Default Light",
		Background:    style.RGB(255, 255, 255),
		Foreground:    style.RGB(0, 0, 0),
		Selection:     style.RGB(173, 214, 255),
		Cursor:        style.RGB(0, 0, 0),
		LineHighlight: style.RGB(245, 245, 245),
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(comment).Italic(),
			capture.String:             style.New(str),
			capture.Number:             style.New(number),
			capture.Boolean:            style.New(keyword),
			capture.Keyword:            style.New(keyword),
			capture.Operator:           style.New(style.RGB(0, 0, 0)),
			capture.Punctuation:        style.New(style.RGB(0, 0, 0)),
			capture.PunctuationBracket: style.New(style.RGB(4, 81, 165)),
			capture.Function:           style.New(function),
			capture.Type:               style.New(typ),
			capture.Variable:           style.New(variable),
			capture.Constant:           style.New(style.RGB(0, 112, 193)),
			capture.Property:           style.New(variable),
			capture.Invalid:            style.New(style.RGB(205, 49, 49)).Underline(),
		},
	}
}

// Monokai returns a Monokai-inspired theme.
func Monokai() *Theme {
	pink := style.RGB(249, 38, 114)
	green := style.RGB(166, 226, 46)
	orange := style.RGB(253, 151, 31)
	yellow := style.RGB(230, 219, 116)
	blue := style.RGB(102, 217, 239)
	purple := style.RGB(174, 129, 255)
	comment := style.RGB(117, 113, 94)
	white := style.RGB(248, 248, 242)

	return &Theme{
		Name:          "Monokai",
		Background:    style.RGB(39, 40, 34),
		Foreground:    white,
		Selection:     style.RGB(73, 72, 62),
		Cursor:        style.RGB(248, 248, 240),
		LineHighlight: style.RGB(62, 61, 50),
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(comment),
			capture.String:             style.New(yellow),
			capture.StringEscape:       style.New(purple),
			capture.Number:             style.New(purple),
			capture.Boolean:            style.New(purple),
			capture.Keyword:            style.New(pink),
			capture.Operator:           style.New(pink),
			capture.Punctuation:        style.New(white),
			capture.PunctuationBracket: style.New(orange),
			capture.Function:           style.New(green),
			capture.Type:               style.New(blue).Italic(),
			capture.Variable:           style.New(white),
			capture.VariableParameter:  style.New(orange).Italic(),
			capture.Constant:           style.New(purple),
			capture.Property:           style.New(white),
			capture.Invalid:            style.New(style.RGB(248, 248, 240)).WithBackground(pink),
		},
	}
}

// Dracula returns a Dracula-inspired theme.
func Dracula() *Theme {
	cyan := style.RGB(139, 233, 253)
	green := style.RGB(80, 250, 123)
	orange := style.RGB(255, 184, 108)
	pink := style.RGB(255, 121, 198)
	purple := style.RGB(189, 147, 249)
	yellow := style.RGB(241, 250, 140)
	comment := style.RGB(98, 114, 164)
	white := style.RGB(248, 248, 242)

	return &Theme{
		Name:          "Dracula",
		Background:    style.RGB(40, 42, 54),
		Foreground:    white,
		Selection:     style.RGB(68, 71, 90),
		Cursor:        white,
		LineHighlight: style.RGB(68, 71, 90),
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(comment),
			capture.String:             style.New(yellow),
			capture.Number:             style.New(purple),
			capture.Boolean:            style.New(purple),
			capture.Keyword:            style.New(pink),
			capture.Operator:           style.New(pink),
			capture.Punctuation:        style.New(white),
			capture.PunctuationBracket: style.New(cyan),
			capture.Function:           style.New(green),
			capture.Type:               style.New(cyan).Italic(),
			capture.Variable:           style.New(white),
			capture.VariableParameter:  style.New(orange).Italic(),
			capture.Constant:           style.New(purple),
			capture.Property:           style.New(white),
			capture.Invalid:            style.New(style.RGB(255, 85, 85)),
		},
	}
}

// SolarizedDark returns a Solarized Dark theme.
func SolarizedDark() *Theme {
	yellow := style.RGB(181, 137, 0)
	orange := style.RGB(203, 75, 22)
	red := style.RGB(220, 50, 47)
	violet := style.RGB(108, 113, 196)
	blue := style.RGB(38, 139, 210)
	cyan := style.RGB(42, 161, 152)
	green := style.RGB(133, 153, 0)
	base0 := style.RGB(131, 148, 150)
	base01 := style.RGB(88, 110, 117)

	return &Theme{
		Name:          "Solarized Dark",
		Background:    style.RGB(0, 43, 54),
		Foreground:    base0,
		Selection:     style.RGB(7, 54, 66),
		Cursor:        style.RGB(131, 148, 150),
		LineHighlight: style.RGB(7, 54, 66),
		CaptureStyles: map[capture.Name]style.Style{
			capture.Comment:            style.New(base01).Italic(),
			capture.String:             style.New(cyan),
			capture.Number:             style.New(cyan),
			capture.Boolean:            style.New(cyan),
			capture.Keyword:            style.New(green),
			capture.Operator:           style.New(green),
			capture.Punctuation:        style.New(base0),
			capture.PunctuationBracket: style.New(orange),
			capture.Function:           style.New(blue),
			capture.Type:               style.New(yellow),
			capture.Variable:           style.New(base0),
			capture.VariableParameter:  style.New(violet),
			capture.Constant:           style.New(violet),
			capture.Property:           style.New(base0),
			capture.Invalid:            style.New(red),
		},
	}
}

// BuiltIn returns the built-in themes in presentation order.
func BuiltIn() []*Theme {
	return []*Theme{
		DefaultDark(),
		DefaultLight(),
		Monokai(),
		Dracula(),
		SolarizedDark(),
	}
}
