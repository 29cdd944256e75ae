package event

import (
	"github.com/glintedit/glint/internal/geom"
	"github.com/glintedit/glint/internal/span"
)

// View layer topics.
const (
	// TopicViewFrameChanged is published when a viewport's frame moves or
	// resizes within its parent.
	TopicViewFrameChanged Topic = "view.frame.changed"

	// TopicViewBoundsChanged is published when a viewport's own coordinate
	// extent changes (zoom, content relayout).
	TopicViewBoundsChanged Topic = "view.bounds.changed"

	// TopicViewScrollChanged is published when a viewport's scroll
	// position changes.
	TopicViewScrollChanged Topic = "view.scroll.changed"

	// TopicViewVisibleSetChanged is published after a tracker adopts a new
	// visible set.
	TopicViewVisibleSetChanged Topic = "view.visible.changed"
)

// Theme topics.
const (
	// TopicThemeChanged is published when the active theme switches.
	TopicThemeChanged Topic = "theme.changed"

	// TopicThemeReloaded is published when a theme file changes on disk
	// and has been reloaded.
	TopicThemeReloaded Topic = "theme.reloaded"
)

// FrameChanged is the payload for TopicViewFrameChanged.
type FrameChanged struct {
	// Frame is the viewport's new visible rectangle in content coordinates.
	Frame geom.Rect
}

// BoundsChanged is the payload for TopicViewBoundsChanged.
type BoundsChanged struct {
	// Bounds is the viewport's new visible rectangle in content coordinates.
	Bounds geom.Rect
}

// ScrollChanged is the payload for TopicViewScrollChanged.
type ScrollChanged struct {
	// Position is the new scroll position along the scroll axis.
	Position span.Offset

	// Delta is the change from the previous position.
	Delta span.Offset
}

// VisibleSetChanged is the payload for TopicViewVisibleSetChanged.
type VisibleSetChanged struct {
	// Visible is the new visible index set.
	Visible span.IndexSet
}

// ThemeChanged is the payload for TopicThemeChanged.
type ThemeChanged struct {
	// Name is the newly active theme.
	Name string
}

// ThemeReloaded is the payload for TopicThemeReloaded.
type ThemeReloaded struct {
	// Name is the reloaded theme.
	Name string

	// Path is the file the reload came from.
	Path string
}
