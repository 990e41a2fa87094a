package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []string
	err  error
}

func (s *fakeSender) SendReviewRequest(to, appointmentRef, doctorName string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

type fakeStore struct {
	recorded         []Event
	recordErr        error
	emailSentIDs     []uint
	reviewSentApptID uint
}

func (s *fakeStore) Record(ev Event) (uint, error) {
	if s.recordErr != nil {
		return 0, s.recordErr
	}
	s.recorded = append(s.recorded, ev)
	return uint(len(s.recorded)), nil
}

func (s *fakeStore) MarkEmailSent(notificationID uint) error {
	s.emailSentIDs = append(s.emailSentIDs, notificationID)
	return nil
}

func (s *fakeStore) MarkReviewEmailSent(appointmentID uint) error {
	s.reviewSentApptID = appointmentID
	return nil
}

func TestDeliver_RecordsAndSends(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{}
	d := &Dispatcher{sender: sender, store: store}

	d.deliver(Event{
		Kind:           KindReviewRequest,
		Recipient:      "patient@example.com",
		UserID:         10,
		AppointmentID:  3,
		AppointmentRef: "ref-123",
		DoctorName:     "House",
	})

	require.Len(t, store.recorded, 1)
	assert.Equal(t, []string{"patient@example.com"}, sender.sent)
	assert.Equal(t, []uint{1}, store.emailSentIDs)
	assert.Zero(t, store.reviewSentApptID)
}

func TestDeliver_MarkSentOnlyAfterDelivery(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{}
	d := &Dispatcher{sender: sender, store: store}

	d.deliver(Event{
		Kind:          KindReviewRequest,
		Recipient:     "patient@example.com",
		AppointmentID: 7,
		MarkSent:      true,
	})

	assert.Equal(t, uint(7), store.reviewSentApptID)
}

func TestDeliver_SendFailureLeavesFlagsUnset(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp timeout")}
	store := &fakeStore{}
	d := &Dispatcher{sender: sender, store: store}

	d.deliver(Event{
		Kind:          KindReviewRequest,
		Recipient:     "patient@example.com",
		AppointmentID: 7,
		MarkSent:      true,
	})

	// The notification row is still recorded for retry tooling, but no
	// sent flag moves until the mailer succeeds.
	require.Len(t, store.recorded, 1)
	assert.Empty(t, store.emailSentIDs)
	assert.Zero(t, store.reviewSentApptID)
}

func TestDeliver_RecordFailureStillSends(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{recordErr: errors.New("db down")}
	d := &Dispatcher{sender: sender, store: store}

	d.deliver(Event{
		Kind:      KindReviewRequest,
		Recipient: "patient@example.com",
	})

	assert.Equal(t, []string{"patient@example.com"}, sender.sent)
	assert.Empty(t, store.emailSentIDs)
}

func TestDispatch_DropsWhenQueueFull(t *testing.T) {
	// No worker draining and zero capacity, so the select must hit the
	// default arm instead of blocking the caller.
	d := &Dispatcher{queue: make(chan Event)}

	done := make(chan struct{})
	go func() {
		d.Dispatch(Event{Kind: KindReviewRequest})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

func TestDispatch_QueuesWhenCapacityAvailable(t *testing.T) {
	d := &Dispatcher{queue: make(chan Event, 1)}

	d.Dispatch(Event{Kind: KindReviewRequest, Recipient: "a@example.com"})

	ev := <-d.queue
	assert.Equal(t, "a@example.com", ev.Recipient)
}
