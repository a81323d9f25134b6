package event

import "errors"

var (
	// ErrPipelineClosed is returned by Dispatch after the pipeline has
	// stopped, either via Quit or context cancellation.
	ErrPipelineClosed = errors.New("event: pipeline closed")

	// ErrNilState is returned by NewPipeline when given a nil state.
	ErrNilState = errors.New("event: nil editor state")
)
