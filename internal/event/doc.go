// Package event provides the command/event pipeline connecting input
// capture, the editor state, and the render loop.
//
// The pipeline owns two bounded FIFO queues. Commands (intents, produced
// by input capture) flow in; Events (facts about what changed, produced
// by applying commands) flow out to whoever renders. A single goroutine
// services the command queue and is the only writer of the editor state;
// readers share the state through View.
//
// # Backpressure
//
// Both queues are bounded. A producer blocks when its consumer has not
// drained fast enough, which caps memory during rapid input bursts.
//
// # Shutdown
//
// Quit stops the pipeline immediately: remaining queued messages are
// dropped, not drained. Producers blocked on a full queue unblock with
// ErrPipelineClosed.
//
// # Basic usage
//
//	state := editor.NewState(text)
//	p := event.NewPipeline(state)
//	go p.Run(ctx)
//
//	p.Dispatch(ctx, editor.InsertChar('a'))
//	for ev := range p.Events() {
//	    // hand ev to views, then repaint
//	}
package event
