package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lg2m/athena/internal/editor"
)

// Pipeline serializes all editor mutations. Exactly one command is in
// flight at a time: Run is the sole writer of the state, and every other
// party reads it through View under the shared lock.
type Pipeline struct {
	state *editor.State
	mu    sync.RWMutex

	commands chan editor.Command
	events   chan editor.Event

	done     chan struct{}
	stopOnce sync.Once

	config pipelineConfig

	commandsServiced atomic.Uint64
	eventsEmitted    atomic.Uint64
}

// Stats is a point-in-time snapshot of pipeline counters.
type Stats struct {
	CommandsServiced uint64
	EventsEmitted    uint64
}

// NewPipeline creates a pipeline over the given state. The pipeline does
// not process anything until Run is called.
func NewPipeline(state *editor.State, opts ...Option) (*Pipeline, error) {
	if state == nil {
		return nil, ErrNilState
	}
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Pipeline{
		state:    state,
		commands: make(chan editor.Command, config.queueSize),
		events:   make(chan editor.Event, config.queueSize),
		done:     make(chan struct{}),
		config:   config,
	}, nil
}

// Dispatch enqueues a command. It blocks while the command queue is full
// and returns ErrPipelineClosed once the pipeline has stopped, or the
// context's error if ctx ends first.
func (p *Pipeline) Dispatch(ctx context.Context, cmd editor.Command) error {
	select {
	case <-p.done:
		return ErrPipelineClosed
	default:
	}
	select {
	case p.commands <- cmd:
		return nil
	case <-p.done:
		return ErrPipelineClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the outbound event queue. It is closed when the
// pipeline stops, so consumers may range over it.
func (p *Pipeline) Events() <-chan editor.Event {
	return p.events
}

// Done is closed when the pipeline has stopped.
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

// View runs fn with shared (read) access to the state. fn must not
// retain the state pointer past its return.
func (p *Pipeline) View(fn func(*editor.State)) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn(p.state)
}

// Mode returns the current editor mode. Used by input capture to pick
// the active keymap without holding the lock across the blocking read.
func (p *Pipeline) Mode() editor.Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Mode()
}

// Stats returns current counter values.
func (p *Pipeline) Stats() Stats {
	return Stats{
		CommandsServiced: p.commandsServiced.Load(),
		EventsEmitted:    p.eventsEmitted.Load(),
	}
}

// Stop halts the pipeline from outside, equivalent to a Quit command.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// Run services the command queue until Quit, Stop, or context
// cancellation. Remaining queued messages are dropped on exit, not
// drained. Run closes the event queue before returning.
func (p *Pipeline) Run(ctx context.Context) error {
	defer close(p.events)
	for {
		select {
		case <-ctx.Done():
			p.Stop()
			return ctx.Err()
		case <-p.done:
			return nil
		case cmd := <-p.commands:
			p.commandsServiced.Add(1)
			switch cmd.Kind {
			case editor.CmdQuit:
				p.Stop()
				return nil
			case editor.CmdSaveFile:
				p.saveFile()
			default:
				if !p.apply(ctx, cmd) {
					p.Stop()
					return nil
				}
			}
		}
	}
}

// apply mutates the state under the write lock and emits the resulting
// events after the lock is released, so a full event queue never stalls
// readers. Reports false when the pipeline stopped mid-emission.
func (p *Pipeline) apply(ctx context.Context, cmd editor.Command) bool {
	p.mu.Lock()
	events := p.state.Apply(cmd)
	p.mu.Unlock()

	for _, ev := range events {
		select {
		case p.events <- ev:
			p.eventsEmitted.Add(1)
		case <-p.done:
			return false
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// saveFile snapshots the buffer under the read lock and persists it
// outside any lock. Failures go to the error sink; the pipeline keeps
// running.
func (p *Pipeline) saveFile() {
	if p.config.save == nil {
		return
	}
	p.mu.RLock()
	buf := p.state.Buffer()
	p.mu.RUnlock()

	if err := p.config.save(buf); err != nil && p.config.onError != nil {
		p.config.onError(err)
	}
}
