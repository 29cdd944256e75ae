package main

import (
	"fmt"

	"github.com/glintedit/glint/internal/brackets"
	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/span"
	"github.com/glintedit/glint/internal/style"
	"github.com/glintedit/glint/internal/termview"
	"github.com/glintedit/glint/internal/theme"
	"github.com/glintedit/glint/internal/view"
)

// minimapWidth is the column budget reserved on the right edge for the
// minimap gutter, including its separator.
const minimapWidth = 6

func render(screen *termview.Screen, doc *termview.DocIndex, vp *termview.TextViewport,
	mm *termview.Minimap, tracker *view.Tracker, registry *theme.Registry,
	resolver *theme.Resolver, captures *capture.Store) {

	th := registry.Current()
	base := style.Default().WithForeground(th.Foreground).WithBackground(th.Background)
	screen.Fill(base)

	visible := tracker.VisibleSet()
	pairs := brackets.PairsInSet(doc.Text(), visible)

	statusRows := 1
	for row := 0; row < vp.Rows()-statusRows; row++ {
		line := vp.TopLine() + row
		if line >= doc.LineCount() {
			break
		}
		renderLine(screen, doc, line, row, th, resolver, captures, pairs, base)
	}

	if !mm.IsHidden() {
		renderMinimap(screen, vp, mm, th, base)
	}
	renderStatus(screen, vp, doc, th, visible)
	screen.Show()
}

// renderLine paints one document line: the base theme style, capture
// styles merged over it, and bracket emphasis over everything.
func renderLine(screen *termview.Screen, doc *termview.DocIndex, line, row int,
	th *theme.Theme, resolver *theme.Resolver, captures *capture.Store,
	pairs []brackets.Pair, base style.Style) {

	lineRange, ok := doc.LineAt(line)
	if !ok {
		return
	}
	text := doc.LineText(line)
	spans := captures.Intersecting(lineRange)

	col := 0
	for i, r := range text {
		off := lineRange.Start + span.Offset(i)
		st := base
		for _, cs := range spans {
			if cs.Range.Contains(off) {
				st = st.Merge(resolver.StyleFor(cs.Name))
			}
		}
		for _, p := range pairs {
			if p.Open.Contains(off) || p.Close.Contains(off) {
				st = st.Merge(brackets.Emphasis(th, p.Depth))
			}
		}
		screen.SetCell(col, row, r, st)
		col++
	}
}

// renderMinimap draws a one-cell-per-row density gutter: each minimap
// row marks whether its (scaled) slice of the document is on screen.
func renderMinimap(screen *termview.Screen, vp *termview.TextViewport,
	mm *termview.Minimap, th *theme.Theme, base style.Style) {

	cols, _ := screen.Size()
	x := cols - minimapWidth
	sep := base.WithForeground(th.Foreground.Darken(0.4))
	mark := base.WithBackground(th.Selection)
	faint := base.WithForeground(th.Foreground.Darken(0.6))

	for row := 0; row < vp.Rows(); row++ {
		screen.SetCell(x, row, '│', sep)

		line := mm.TopLine() + row*mm.Scale()
		if line >= vp.TopLine() && line < vp.TopLine()+vp.Rows() {
			screen.DrawText(x+1, row, "▐▐▐▐▐", mark)
		} else if line < mm.TopLine()+mm.Lines() {
			screen.DrawText(x+1, row, "·····", faint)
		}
	}
}

// renderStatus draws a single status line at the bottom.
func renderStatus(screen *termview.Screen, vp *termview.TextViewport,
	doc *termview.DocIndex, th *theme.Theme, visible span.IndexSet) {

	cols, rows := screen.Size()
	st := style.Default().
		WithForeground(th.Background).
		WithBackground(th.Foreground)

	status := fmt.Sprintf(" %s │ line %d/%d │ visible %s ",
		th.Name, vp.TopLine()+1, doc.LineCount(), visible)
	for len(status) < cols {
		status += " "
	}
	screen.DrawText(0, rows-1, status, st)
}
