package event

import "github.com/lg2m/athena/internal/engine/rope"

// DefaultQueueSize bounds both the command and event queues.
const DefaultQueueSize = 100

// SaveFunc persists a buffer snapshot. It runs on the pipeline goroutine
// outside any lock; the snapshot is a value and stays stable while the
// save is in flight.
type SaveFunc func(rope.Rope) error

// ErrorFunc receives recoverable errors (currently only save failures).
// The pipeline itself never retries.
type ErrorFunc func(error)

// Option configures a Pipeline.
type Option func(*pipelineConfig)

type pipelineConfig struct {
	queueSize int
	save      SaveFunc
	onError   ErrorFunc
}

func defaultConfig() pipelineConfig {
	return pipelineConfig{queueSize: DefaultQueueSize}
}

// WithQueueSize sets the capacity of both queues. Values below 1 are
// ignored.
func WithQueueSize(n int) Option {
	return func(c *pipelineConfig) {
		if n >= 1 {
			c.queueSize = n
		}
	}
}

// WithSaveFunc installs the handler for the SaveFile command. Without
// one, SaveFile is a no-op.
func WithSaveFunc(fn SaveFunc) Option {
	return func(c *pipelineConfig) { c.save = fn }
}

// WithErrorFunc installs the recoverable-error sink.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(c *pipelineConfig) { c.onError = fn }
}
