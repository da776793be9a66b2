// Command sticky-demo is an interactive terminal sandbox for the positioning
// engine: a scrollable document with an auto-hiding group header, a sidebar
// pinned under it, and an oversized flow-policy panel. Scroll with
// j/k/arrows/wheel/PgUp/PgDn; q quits. With -record every region's measured
// cycles are stored as replayable sessions
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/sticky/engine"
	"github.com/lixenwraith/sticky/logging"
	"github.com/lixenwraith/sticky/region"
	"github.com/lixenwraith/sticky/terminal"
	"github.com/lixenwraith/sticky/trace"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (defaults are built in)")
	record := flag.Bool("record", false, "record every region's cycles to the session store")
	dbPath := flag.String("db", "sticky.db", "session store path used with -record")
	logPath := flag.String("log", "", "append logs to this file instead of discarding them")
	logLevel := flag.String("log-level", "info", "log level (debug|info|warn|error)")
	flag.Parse()

	if err := run(*scenePath, *record, *dbPath, *logPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "sticky-demo:", err)
		os.Exit(1)
	}
}

func run(scenePath string, record bool, dbPath, logPath, logLevel string) error {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	overflow, err := scene.PanelOverflow()
	if err != nil {
		return err
	}

	// The screen owns the terminal; anything logged to stderr would tear it
	log := logging.Discard()
	if logPath != "" {
		fileLog, closer, err := logging.NewFileLogger(logPath, logging.ParseLevel(logLevel))
		if err != nil {
			return err
		}
		defer closer.Close()
		log = fileLog
	}

	var rec *recorder
	if record {
		store, err := trace.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		rec = newRecorder(store, log)
		rec.configure(scene.Sidebar.Title, trace.ConfigSpec{
			OffsetTop:    scene.Sidebar.OffsetTop,
			Overflow:     engine.OverflowEnd,
			HasContainer: true,
		})
		rec.configure(scene.Panel.Title, trace.ConfigSpec{
			Overflow:     overflow,
			HasContainer: true,
		})
	}

	coord := engine.NewCoordinator()
	caps := terminal.Detect()
	doc := terminal.NewDocument(coord, caps, log)

	doc.AddBlock("intro", scene.Intro.Height)

	sidebarContainer := doc.AddBlock("sidebar content", scene.Sidebar.ContainerHeight)
	doc.AddSticky(terminal.StickyOptions{
		Title:     scene.Sidebar.Title,
		Height:    scene.Sidebar.Height,
		Container: sidebarContainer,
		OffsetTop: scene.Sidebar.OffsetTop,
		Native:    scene.Sidebar.Native,
	})

	doc.AddBlock("spacer", scene.Spacer.Height)

	panelContainer := doc.AddBlock("panel content", scene.Panel.ContainerHeight)
	doc.AddSticky(terminal.StickyOptions{
		Title:     scene.Panel.Title,
		Height:    scene.Panel.Height,
		Container: panelContainer,
		Overflow:  overflow,
	})

	doc.AddBlock("outro", scene.Outro.Height)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	opts := terminal.Options{
		Header:      &terminal.HeaderOptions{Title: scene.Header.Title, Height: scene.Header.Height},
		Coordinator: coord,
		Logger:      log,
	}
	if rec != nil {
		opts.OnCycle = rec.observe
	}

	host := terminal.New(screen, doc, opts)
	if err := host.Run(); err != nil {
		return err
	}
	if rec != nil {
		rec.report(os.Stdout)
	}
	return nil
}

// recorder appends every region's measured cycles to the session store as
// they happen, one session per region
type recorder struct {
	store    *trace.Store
	log      *slog.Logger
	configs  map[string]trace.ConfigSpec
	sessions map[string]*recording
	order    []string
}

type recording struct {
	id   uuid.UUID
	seq  int
	lost bool
}

func newRecorder(store *trace.Store, log *slog.Logger) *recorder {
	return &recorder{
		store:    store,
		log:      log,
		configs:  make(map[string]trace.ConfigSpec),
		sessions: make(map[string]*recording),
	}
}

// configure registers the region configuration stored with a session
func (r *recorder) configure(name string, cfg trace.ConfigSpec) {
	r.configs[name] = cfg
}

// observe implements terminal.Options.OnCycle. A session is created the
// first time a region reports; store errors disable that region's recording
// instead of interrupting the demo
func (r *recorder) observe(name string, in region.Input, out region.Outcome) {
	ctx := context.Background()

	rc, ok := r.sessions[name]
	if !ok {
		rc = &recording{}
		id, err := r.store.CreateSession(ctx, name, in.Viewport.Height, r.configs[name])
		if err != nil {
			rc.lost = true
			r.log.Warn("create recording session", "region", name, "error", err)
		}
		rc.id = id
		r.sessions[name] = rc
		r.order = append(r.order, name)
	}
	if rc.lost {
		return
	}

	if err := r.store.AppendSample(ctx, rc.id, rc.seq, trace.NewSample(in.Scroll.Y, in.Sticky, in.Container)); err != nil {
		rc.lost = true
		r.log.Warn("append recording sample", "region", name, "error", err)
		return
	}
	rc.seq++
}

// report prints the stored session ids after the screen is released
func (r *recorder) report(w io.Writer) {
	for _, name := range r.order {
		rc := r.sessions[name]
		if rc.lost {
			fmt.Fprintf(w, "recording for %q was interrupted\n", name)
			continue
		}
		fmt.Fprintf(w, "recorded %q as session %s (%d cycles)\n", name, rc.id, rc.seq)
	}
}
