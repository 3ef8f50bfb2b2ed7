package notificationinfra

import (
	"context"

	"github.com/Abraxas-365/stint/marketplace/notification"
	"github.com/Abraxas-365/stint/pkg/logx"
)

// LogNotifier writes notifications to the application log. Stands in
// for the email and push channels
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() notification.Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, msg notification.Notification) error {
	logx.Infof("notify %s (seeker=%s company=%s): %s - %s",
		msg.Recipient, msg.SeekerID, msg.CompanyID, msg.Subject, msg.Body)
	return nil
}
