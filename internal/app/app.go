package app

import (
	"context"
	"errors"

	"github.com/lg2m/athena/internal/config"
	"github.com/lg2m/athena/internal/editor"
	"github.com/lg2m/athena/internal/engine/rope"
	"github.com/lg2m/athena/internal/event"
	"github.com/lg2m/athena/internal/input/keymap"
	"github.com/lg2m/athena/internal/renderer"
	"github.com/lg2m/athena/internal/renderer/backend"
	"github.com/lg2m/athena/internal/renderer/document"
	"github.com/lg2m/athena/internal/renderer/statusline"
)

// App owns one editing session: a document, its state, the pipeline,
// and the views painting onto a backend.
type App struct {
	cfg config.Config
	log *Logger
	doc *Document
	out backend.Backend

	pipe  *event.Pipeline
	keys  *keymap.Registry
	views *renderer.Registry

	docView *document.View
	status  *statusline.StatusLine

	savedCh  chan struct{}
	resizeCh chan struct{}
	cfgCh    chan config.Config
}

// New assembles a session over the given document and backend.
func New(cfg config.Config, doc *Document, out backend.Backend, log *Logger) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      log,
		doc:      doc,
		out:      out,
		keys:     keymap.NewRegistry(),
		views:    renderer.NewRegistry(),
		savedCh:  make(chan struct{}, 1),
		resizeCh: make(chan struct{}, 1),
		cfgCh:    make(chan config.Config, 1),
	}

	state := editor.NewState(doc.Text)
	pipe, err := event.NewPipeline(state,
		event.WithQueueSize(cfg.Pipeline.QueueSize),
		event.WithSaveFunc(a.save),
		event.WithErrorFunc(func(err error) {
			log.Error("save failed: %v", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	a.pipe = pipe

	if err := keymap.LoadDefaults(a.keys); err != nil {
		return nil, err
	}
	for mode, overrides := range cfg.Keys {
		if err := keymap.ApplyOverrides(a.keys, mode, overrides); err != nil {
			return nil, err
		}
	}

	theme := renderer.DefaultTheme()
	if cfg.Editor.Theme == "mono" {
		theme = renderer.MonochromeTheme()
	}

	a.docView = document.NewView(theme)
	a.docView.SetLineNumbers(cfg.Editor.LineNumbers)
	if err := a.docView.SetGutterLayout(cfg.Gutter.Layout); err != nil {
		return nil, err
	}
	a.docView.SetGutterMinWidth(cfg.Gutter.MinWidth)
	a.docView.SetTabWidth(cfg.Editor.TabWidth)

	layout, err := statusline.ParseLayout(cfg.StatusLine.Left, cfg.StatusLine.Center, cfg.StatusLine.Right)
	if err != nil {
		return nil, err
	}
	a.status = statusline.New(theme.StatusLine)
	a.status.SetLayout(layout)
	if doc.Path != "" {
		a.status.SetFileName(doc.Name)
	}
	a.status.SetEncoding(doc.EncodingName())
	a.status.SetLanguage(doc.Language)

	if err := a.views.Register("document", a.docView); err != nil {
		return nil, err
	}
	if err := a.views.Register("status_bar", a.status); err != nil {
		return nil, err
	}

	return a, nil
}

// Pipeline exposes the command entry point, for input sources other
// than the built-in loop.
func (a *App) Pipeline() *event.Pipeline {
	return a.pipe
}

// WatchConfig reloads cfg from path while the session runs. Bad
// revisions are logged and skipped.
func (a *App) WatchConfig(ctx context.Context, path string) error {
	w, err := config.NewWatcher(path,
		func(cfg config.Config) {
			select {
			case a.cfgCh <- cfg:
			default:
			}
		},
		func(err error) {
			a.log.Warn("config reload: %v", err)
		},
	)
	if err != nil {
		return err
	}
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn("config watcher stopped: %v", err)
		}
	}()
	return nil
}

// Run drives the session until Quit, backend shutdown, or context
// cancellation.
func (a *App) Run(ctx context.Context) error {
	if err := a.out.Init(); err != nil {
		return err
	}
	defer a.out.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pipeDone := make(chan error, 1)
	go func() { pipeDone <- a.pipe.Run(ctx) }()
	go a.inputLoop(ctx)

	a.log.Info("session started: %s", a.doc.Name)
	a.render()

	for {
		select {
		case <-a.pipe.Done():
			// Quit is immediate: events still queued are dropped, not
			// handled or rendered.
			return a.shutdown(pipeDone)
		case ev, ok := <-a.pipe.Events():
			if !ok {
				return a.shutdown(pipeDone)
			}
			a.pipe.View(func(s *editor.State) {
				a.views.HandleEvent(ev, s)
			})
			a.render()
		case <-a.savedCh:
			a.status.MarkSaved()
			a.render()
		case <-a.resizeCh:
			a.pipe.View(func(s *editor.State) {
				a.views.HandleEvent(editor.ViewportChanged(), s)
			})
			a.render()
		case cfg := <-a.cfgCh:
			a.applyConfig(cfg)
			a.render()
		}
	}
}

// shutdown unblocks the input loop and reaps the pipeline goroutine.
func (a *App) shutdown(pipeDone <-chan error) error {
	a.out.Interrupt()
	err := <-pipeDone
	a.log.Info("session ended")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// inputLoop translates terminal events into commands until the backend
// or the pipeline shuts down.
func (a *App) inputLoop(ctx context.Context) {
	for {
		ev := a.out.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case backend.KeyEvent:
			cmd, ok := a.keys.Lookup(a.pipe.Mode(), e.Key)
			if !ok {
				continue
			}
			if err := a.pipe.Dispatch(ctx, cmd); err != nil {
				return
			}
		case backend.ResizeEvent:
			select {
			case a.resizeCh <- struct{}{}:
			default:
			}
		}
	}
}

// render repaints dirty views under the shared read lock.
func (a *App) render() {
	a.pipe.View(func(s *editor.State) {
		if err := a.views.RenderPass(a.out, s); err != nil {
			a.log.Error("render: %v", err)
		}
	})
}

// save persists the buffer and tells the status line on success. Runs
// on the pipeline goroutine.
func (a *App) save(buf rope.Rope) error {
	if err := a.doc.Save(buf); err != nil {
		return err
	}
	a.log.Info("saved %s (%d chars)", a.doc.Path, buf.Len())
	select {
	case a.savedCh <- struct{}{}:
	default:
	}
	return nil
}

// applyConfig applies a live-reloaded config. Settings that need a
// restart (theme, queue size, keymaps) are logged and left alone.
func (a *App) applyConfig(cfg config.Config) {
	if cfg.Editor.Theme != a.cfg.Editor.Theme {
		a.log.Warn("theme change requires restart")
	}
	a.docView.SetLineNumbers(cfg.Editor.LineNumbers)
	if err := a.docView.SetGutterLayout(cfg.Gutter.Layout); err != nil {
		a.log.Warn("gutter layout: %v", err)
	}
	a.docView.SetGutterMinWidth(cfg.Gutter.MinWidth)
	a.docView.SetTabWidth(cfg.Editor.TabWidth)
	if layout, err := statusline.ParseLayout(cfg.StatusLine.Left, cfg.StatusLine.Center, cfg.StatusLine.Right); err == nil {
		a.status.SetLayout(layout)
	} else {
		a.log.Warn("statusline layout: %v", err)
	}
	a.cfg = cfg
	a.log.Info("config reloaded")
}
