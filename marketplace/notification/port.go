package notification

import (
	"context"
	"time"
)

// Queue is the outbox between transition handling and dispatch. Events
// are enqueued on the request path and drained by the worker pool
type Queue interface {
	// Enqueue adds an event payload to the ready queue
	Enqueue(ctx context.Context, payload any) error

	// Dequeue pops one payload, blocking up to timeout. Returns nil
	// when the queue stayed empty
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a payload for later delivery (retries)
	EnqueueDelayed(ctx context.Context, payload any, delay time.Duration) error

	// MoveDelayedToReady promotes due delayed payloads to the ready queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// Size returns the number of ready payloads
	Size(ctx context.Context) (int64, error)

	// Ping checks the queue backend is reachable
	Ping(ctx context.Context) error
}

// Notifier delivers one rendered notification. Implementations decide
// the channel (email, push, log)
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
