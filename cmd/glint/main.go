// Package main is a terminal demo of the glint view engine: a generated
// document scrolls under a viewport and minimap, the visible-range
// tracker scopes highlighting work, and bracket pairs inside the visible
// set render with depth-cycled emphasis.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	lorem "github.com/drhodes/golorem"
	"github.com/gdamore/tcell/v2"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/config"
	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/log"
	"github.com/glintedit/glint/internal/span"
	"github.com/glintedit/glint/internal/termview"
	"github.com/glintedit/glint/internal/theme"
	"github.com/glintedit/glint/internal/view"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a glint.toml config file")
	themeName := flag.String("theme", "", "theme name, overriding the config")
	lines := flag.Int("lines", 400, "number of generated document lines")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("glint %s\n", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	manager := config.NewManager(cfg)

	log.Set(log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Prefix: "glint",
	}))

	bus := event.NewBus()
	defer bus.Close()

	registry := theme.NewRegistry(bus)
	resolver, err := theme.NewResolver(registry, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating resolver: %v\n", err)
		return 1
	}
	defer resolver.Close()

	if cfg.ThemeDir != "" {
		watcher, err := theme.NewWatcher(registry, bus, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: creating theme watcher: %v\n", err)
			return 1
		}
		defer watcher.Close()
		if err := watcher.Watch(cfg.ThemeDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", cfg.ThemeDir, err)
			return 1
		}
	}
	if err := registry.SetCurrent(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	doc := termview.NewDocIndex(generateDocument(*lines))
	captures := capture.NewStore()
	collectCaptures(doc, captures)

	screen, err := termview.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	var vpOpts []termview.ViewportOption
	vpOpts = append(vpOpts, termview.WithBus(bus))
	if p := cfg.PaddingOffset(); p >= 0 {
		vpOpts = append(vpOpts, termview.WithPadding(p))
	}
	viewport := termview.NewTextViewport(doc, cols-minimapWidth, rows, vpOpts...)
	minimap := termview.NewMinimap(doc, rows, cfg.MinimapScale)
	minimap.SetHidden(!cfg.MinimapEnabled)

	tracker := view.NewTracker(viewport,
		view.WithSecondary(minimap),
		view.WithAxis(cfg.Axis()),
		view.WithLogger(log.Get().WithComponent("view.tracker")))
	defer tracker.Detach()
	if err := tracker.BindBus(bus); err != nil {
		fmt.Fprintf(os.Stderr, "Error: binding tracker: %v\n", err)
		return 1
	}
	tracker.Observe(viewport.ApplyVisibleSet)
	tracker.Recompute()

	// Runtime toggles go through the config manager so every consumer
	// observes the same configuration.
	sub := manager.OnChange(func(c config.Config) {
		minimap.SetHidden(!c.MinimapEnabled)
		_ = registry.SetCurrent(c.Theme)
		tracker.Recompute()
	})
	defer sub.Unsubscribe()

	// Ctrl-C lands as a key event with tcell input enabled; real signals
	// still need to restore the terminal.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
		os.Exit(1)
	}()

	themeNames := registry.Names()
	for {
		render(screen, doc, viewport, minimap, tracker, registry, resolver, captures)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			screen.Clear()
			viewport.SetSize(w-minimapWidth, h)

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' || ev.Key() == tcell.KeyCtrlC:
				return 0
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				viewport.ScrollBy(-1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				viewport.ScrollBy(1)
			case ev.Key() == tcell.KeyPgUp:
				viewport.ScrollBy(-viewport.Rows())
			case ev.Key() == tcell.KeyPgDn:
				viewport.ScrollBy(viewport.Rows())
			case ev.Rune() == 'g':
				viewport.ScrollTo(0)
			case ev.Rune() == 'G':
				viewport.ScrollTo(doc.LineCount())
			case ev.Rune() == 'm':
				c := manager.Current()
				c.MinimapEnabled = !c.MinimapEnabled
				_ = manager.Update(c)
			case ev.Rune() == 't':
				cycleTheme(manager, themeNames)
			}
		}

		minimap.SyncTo(viewport.TopLine() + viewport.Rows()/2)
		tracker.Recompute()
	}
}

// cycleTheme switches the configuration to the next registered theme.
func cycleTheme(manager *config.Manager, names []string) {
	c := manager.Current()
	for i, name := range names {
		if name == c.Theme {
			c.Theme = names[(i+1)%len(names)]
			_ = manager.Update(c)
			return
		}
	}
}

// generateDocument produces pseudo-code: bracketed function headers with
// lorem prose bodies, so bracket matching and captures have targets.
func generateDocument(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		switch i % 8 {
		case 0:
			fmt.Fprintf(&b, "func %s(%s, %s) {\n", lorem.Word(4, 10), lorem.Word(3, 8), lorem.Word(3, 8))
		case 3:
			fmt.Fprintf(&b, "\t%s := [\"%s\"]\n", lorem.Word(3, 8), lorem.Word(5, 12))
		case 7:
			b.WriteString("}\n")
		default:
			fmt.Fprintf(&b, "\t// %s\n", lorem.Sentence(4, 10))
		}
	}
	return b.String()
}

// collectCaptures runs a toy lexer over the document: keywords, line
// comments, and quoted strings. A real host feeds grammar captures in.
func collectCaptures(doc *termview.DocIndex, store *capture.Store) {
	text := doc.Text()
	for i := 0; i < doc.LineCount(); i++ {
		r, _ := doc.LineAt(i)
		line := text[r.Start:r.End]

		if idx := strings.Index(line, "func "); idx >= 0 {
			store.Put(span.New(r.Start+span.Offset(idx), 4), capture.Keyword)
		}
		if idx := strings.Index(line, "//"); idx >= 0 {
			store.Put(span.FromBounds(r.Start+span.Offset(idx), r.End), capture.Comment)
		}
		if open := strings.IndexByte(line, '"'); open >= 0 {
			if rel := strings.IndexByte(line[open+1:], '"'); rel >= 0 {
				store.Put(span.New(r.Start+span.Offset(open), span.Offset(rel+2)), capture.String)
			}
		}
	}
}
