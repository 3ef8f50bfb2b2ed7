package notificationinfra

import (
	"context"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/marketplace/notification"
)

// QueuePublisher implements application.Publisher by writing events to
// the notification outbox
type QueuePublisher struct {
	queue notification.Queue
}

// NewQueuePublisher creates a publisher backed by the outbox queue
func NewQueuePublisher(queue notification.Queue) application.Publisher {
	return &QueuePublisher{queue: queue}
}

func (p *QueuePublisher) Publish(ctx context.Context, event application.Event) error {
	return p.queue.Enqueue(ctx, event)
}
