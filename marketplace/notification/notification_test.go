package notification

import (
	"testing"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(kind application.EventKind) application.Event {
	return application.Event{
		ID:            "evt-1",
		Kind:          kind,
		ApplicationID: "app-1",
		JobID:         "job-1",
		SeekerID:      "seeker-1",
		CompanyID:     "company-1",
		JobTitle:      "Warehouse Shift",
	}
}

func TestFromEventRoutesToCounterparty(t *testing.T) {
	companyBound := []application.EventKind{
		application.EventApplied,
		application.EventInvitationAccepted,
		application.EventHireResponded,
		application.EventInterviewResponded,
		application.EventWithdrawn,
	}
	for _, kind := range companyBound {
		msgs := FromEvent(event(kind))
		require.Len(t, msgs, 1, "%s", kind)
		assert.Equal(t, RecipientCompany, msgs[0].Recipient, "%s", kind)
		assert.Equal(t, "company-1", msgs[0].CompanyID.String())
	}

	seekerBound := []application.EventKind{
		application.EventInvited,
		application.EventShortlisted,
		application.EventHireRequested,
		application.EventInterviewScheduled,
		application.EventAccepted,
		application.EventRejected,
		application.EventDeclined,
		application.EventAbsenceReported,
	}
	for _, kind := range seekerBound {
		msgs := FromEvent(event(kind))
		require.Len(t, msgs, 1, "%s", kind)
		assert.Equal(t, RecipientSeeker, msgs[0].Recipient, "%s", kind)
		assert.Equal(t, "seeker-1", msgs[0].SeekerID.String())
	}
}

func TestFromEventNotifiesBothPartiesOnClosure(t *testing.T) {
	for _, kind := range []application.EventKind{application.EventCompleted, application.EventCancelled} {
		msgs := FromEvent(event(kind))
		require.Len(t, msgs, 2, "%s", kind)

		recipients := map[Recipient]bool{}
		for _, m := range msgs {
			recipients[m.Recipient] = true
			assert.Equal(t, event(kind).ID, m.EventID)
		}
		assert.True(t, recipients[RecipientSeeker])
		assert.True(t, recipients[RecipientCompany])
	}
}

func TestFromEventMentionsTheJob(t *testing.T) {
	msgs := FromEvent(event(application.EventShortlisted))
	require.Len(t, msgs, 1)
	assert.NotEmpty(t, msgs[0].Subject)
	assert.Contains(t, msgs[0].Body, "Warehouse Shift")
}

func TestFromEventUnknownKind(t *testing.T) {
	assert.Nil(t, FromEvent(event("application.unknown")))
}
