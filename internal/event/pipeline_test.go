package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lg2m/athena/internal/editor"
	"github.com/lg2m/athena/internal/engine/rope"
)

func startPipeline(t *testing.T, state *editor.State, opts ...Option) *Pipeline {
	t.Helper()
	p, err := NewPipeline(state, opts...)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	go p.Run(context.Background())
	t.Cleanup(p.Stop)
	return p
}

func collect(t *testing.T, p *Pipeline, n int) []editor.Event {
	t.Helper()
	events := make([]editor.Event, 0, n)
	timeout := time.After(2 * time.Second)
	for len(events) < n {
		select {
		case ev, ok := <-p.Events():
			if !ok {
				t.Fatalf("event queue closed after %d of %d events", len(events), n)
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(events), n)
		}
	}
	return events
}

func TestNewPipelineNilState(t *testing.T) {
	if _, err := NewPipeline(nil); !errors.Is(err, ErrNilState) {
		t.Fatalf("err = %v, want ErrNilState", err)
	}
}

func TestPipelineAppliesCommands(t *testing.T) {
	ctx := context.Background()
	p := startPipeline(t, editor.NewState(""))

	if err := p.Dispatch(ctx, editor.UpdateMode(editor.ModeInsert)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if err := p.Dispatch(ctx, editor.InsertChar('a')); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	events := collect(t, p, 2)
	if events[0].Kind != editor.EvModeChanged || events[1].Kind != editor.EvBufferChanged {
		t.Errorf("events = %v, want [ModeChanged, BufferChanged]", events)
	}

	var text string
	p.View(func(s *editor.State) { text = s.Buffer().String() })
	if text != "a" {
		t.Errorf("buffer = %q, want %q", text, "a")
	}
}

func TestPipelineEventOrderWithinCommand(t *testing.T) {
	ctx := context.Background()
	p := startPipeline(t, editor.NewState("foo"))

	if err := p.Dispatch(ctx, editor.AppendBelow()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	events := collect(t, p, 2)
	if events[0].Kind != editor.EvCursorMoved || events[0].Line != 1 || events[0].Col != 0 {
		t.Errorf("first event = %v, want CursorMoved(1,0)", events[0])
	}
	if events[1].Kind != editor.EvModeChanged || events[1].Mode != editor.ModeInsert {
		t.Errorf("second event = %v, want ModeChanged(Insert)", events[1])
	}
}

func TestPipelineQuitStopsImmediately(t *testing.T) {
	ctx := context.Background()
	p, err := NewPipeline(editor.NewState("abc"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	ran := make(chan error, 1)
	go func() { ran <- p.Run(ctx) }()

	if err := p.Dispatch(ctx, editor.Quit()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	select {
	case err := <-ran:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}

	if _, ok := <-p.Events(); ok {
		t.Error("event queue still open after Quit")
	}
	if err := p.Dispatch(ctx, editor.InsertChar('x')); !errors.Is(err, ErrPipelineClosed) {
		t.Errorf("Dispatch after Quit = %v, want ErrPipelineClosed", err)
	}
}

func TestPipelineContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p, err := NewPipeline(editor.NewState(""))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	ran := make(chan error, 1)
	go func() { ran <- p.Run(ctx) }()
	cancel()

	select {
	case err := <-ran:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPipelineSaveFile(t *testing.T) {
	ctx := context.Background()
	saved := make(chan string, 1)
	p := startPipeline(t, editor.NewState("hello"), WithSaveFunc(func(buf rope.Rope) error {
		saved <- buf.String()
		return nil
	}))

	if err := p.Dispatch(ctx, editor.SaveFile()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	select {
	case got := <-saved:
		if got != "hello" {
			t.Errorf("saved %q, want %q", got, "hello")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("save func never invoked")
	}
}

func TestPipelineSaveErrorReachesSink(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("disk full")
	got := make(chan error, 1)
	p := startPipeline(t, editor.NewState("x"),
		WithSaveFunc(func(rope.Rope) error { return wantErr }),
		WithErrorFunc(func(err error) { got <- err }),
	)

	if err := p.Dispatch(ctx, editor.SaveFile()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	select {
	case err := <-got:
		if !errors.Is(err, wantErr) {
			t.Errorf("sink received %v, want %v", err, wantErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("error sink never invoked")
	}
}

func TestPipelineStats(t *testing.T) {
	ctx := context.Background()
	p := startPipeline(t, editor.NewState(""))

	p.Dispatch(ctx, editor.UpdateMode(editor.ModeInsert))
	p.Dispatch(ctx, editor.InsertChar('a'))
	collect(t, p, 2)

	stats := p.Stats()
	if stats.CommandsServiced != 2 {
		t.Errorf("CommandsServiced = %d, want 2", stats.CommandsServiced)
	}
	if stats.EventsEmitted != 2 {
		t.Errorf("EventsEmitted = %d, want 2", stats.EventsEmitted)
	}
}

func TestWithQueueSize(t *testing.T) {
	p, err := NewPipeline(editor.NewState(""), WithQueueSize(3))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	if cap(p.commands) != 3 || cap(p.events) != 3 {
		t.Errorf("queue caps = (%d,%d), want (3,3)", cap(p.commands), cap(p.events))
	}
	if _, err := NewPipeline(editor.NewState(""), WithQueueSize(0)); err != nil {
		t.Fatalf("NewPipeline with ignored size: %v", err)
	}
}
