package termview

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/glintedit/glint/internal/style"
)

// Screen is a thin tcell wrapper the demo renders on. It translates the
// toolkit-agnostic style carriers to tcell styles at the boundary.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewScreen creates a screen on the real terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// NewScreenFrom wraps an existing tcell screen, used with simulation
// screens in tests.
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init initializes the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// Clear clears the screen.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
}

// Fill paints the whole screen with the given style.
func (s *Screen) Fill(st style.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fill(' ', toTcellStyle(st))
}

// SetCell writes one rune.
func (s *Screen) SetCell(x, y int, r rune, st style.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetContent(x, y, r, nil, toTcellStyle(st))
}

// DrawText writes a string starting at (x, y), advancing by grapheme
// cluster width so wide runes occupy their cells correctly.
func (s *Screen) DrawText(x, y int, text string, st style.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := toTcellStyle(st)
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			break
		}
		s.screen.SetContent(x, y, runes[0], runes[1:], ts)
		x += width
	}
}

// Show flushes pending writes to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// toTcellStyle converts a style carrier to a tcell style.
func toTcellStyle(st style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(toTcellColor(st.Foreground)).
		Background(toTcellColor(st.Background))

	if st.Attributes.Has(style.AttrBold) {
		ts = ts.Bold(true)
	}
	if st.Attributes.Has(style.AttrDim) {
		ts = ts.Dim(true)
	}
	if st.Attributes.Has(style.AttrItalic) {
		ts = ts.Italic(true)
	}
	if st.Attributes.Has(style.AttrUnderline) {
		ts = ts.Underline(true)
	}
	if st.Attributes.Has(style.AttrReverse) {
		ts = ts.Reverse(true)
	}
	if st.Attributes.Has(style.AttrStrikethrough) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

// toTcellColor converts a color carrier to a tcell color.
func toTcellColor(c style.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}
