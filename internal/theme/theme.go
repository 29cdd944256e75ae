// Package theme maps syntax-capture names to visual styles. A theme is a
// plain value; the registry tracks the active one and announces switches
// on the event bus.
package theme

import (
	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// Theme defines the editor palette and per-capture styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the editor background color.
	Background style.Color

	// Foreground is the default text color.
	Foreground style.Color

	// Selection is the selection highlight color.
	Selection style.Color

	// Cursor is the cursor color.
	Cursor style.Color

	// LineHighlight is the current line highlight color.
	LineHighlight style.Color

	// CaptureStyles maps capture names to their styles.
	CaptureStyles map[capture.Name]style.Style
}

// StyleFor returns the style for a capture name. Lookup tries the exact
// name first, then walks parent names ("keyword.operator" falls back to
// "keyword"), and finally yields the default foreground.
func (t *Theme) StyleFor(name capture.Name) style.Style {
	for n := name; n != ""; n = n.Parent() {
		if s, ok := t.CaptureStyles[n]; ok {
			return s
		}
	}
	return style.New(t.Foreground)
}

// Clone returns an independent copy of the theme.
func (t *Theme) Clone() *Theme {
	out := *t
	out.CaptureStyles = make(map[capture.Name]style.Style, len(t.CaptureStyles))
	for k, v := range t.CaptureStyles {
		out.CaptureStyles[k] = v
	}
	return &out
}
