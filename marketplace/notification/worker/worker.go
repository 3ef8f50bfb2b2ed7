package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/marketplace/notification"
	"github.com/Abraxas-365/stint/pkg/logx"
)

const retryDelay = 1 * time.Minute

// DispatchWorker drains the notification outbox and delivers through
// the Notifier port. Delivery failures go back on the delayed queue
type DispatchWorker struct {
	queue    notification.Queue
	notifier notification.Notifier
	workers  int
}

func NewDispatchWorker(queue notification.Queue, notifier notification.Notifier, workers int) *DispatchWorker {
	return &DispatchWorker{
		queue:    queue,
		notifier: notifier,
		workers:  workers,
	}
}

func (w *DispatchWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d notification workers", w.workers)

	// Start delayed event mover
	go w.moveDelayedEvents(ctx)

	// Start worker pool
	for i := 0; i < w.workers; i++ {
		go w.processEvents(ctx, i)
	}
}

func (w *DispatchWorker) processEvents(ctx context.Context, workerID int) {
	logx.Infof("Notification worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Notification worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Notification worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Empty data means the queue timed out with nothing to do
			if len(data) == 0 {
				continue
			}

			var event application.Event
			if err := json.Unmarshal(data, &event); err != nil {
				logx.Errorf("Notification worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			w.dispatch(ctx, workerID, event)
		}
	}
}

// dispatch delivers every notification the event renders to. Retries
// re-queue the whole event, so delivery is at least once: recipients
// already notified may hear about the event again
func (w *DispatchWorker) dispatch(ctx context.Context, workerID int, event application.Event) {
	for _, msg := range notification.FromEvent(event) {
		if err := w.notifier.Notify(ctx, msg); err != nil {
			logx.Errorf("Notification worker %d delivery failed for event %s: %v", workerID, event.ID, err)
			if err := w.queue.EnqueueDelayed(ctx, event, retryDelay); err != nil {
				logx.Errorf("Notification worker %d failed to schedule retry for event %s: %v", workerID, event.ID, err)
			}
			return
		}
	}
}

func (w *DispatchWorker) moveDelayedEvents(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed events: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed events to ready queue", count)
			}
		}
	}
}
