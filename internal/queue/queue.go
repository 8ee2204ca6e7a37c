package queue

import "context"

// Publisher enqueues extraction tasks.
type Publisher interface {
	Publish(ctx context.Context, task ExtractionTask) error
	Close() error
}

// Handler processes one delivered task. A nil return means the task reached
// a safe checkpoint (done, recorded as failed, or correctly discarded) and
// may be acknowledged. A non-nil return withholds the acknowledgment; the
// delivery is retried.
type Handler interface {
	HandleTask(ctx context.Context, task ExtractionTask) error
}

// Consumer is a long-lived loop pulling tasks for one worker.
type Consumer interface {
	Run(ctx context.Context) error
	Close() error
}
