package notify

import (
	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindReviewRequest Kind = "REVIEW_REQUEST"
)

type Event struct {
	Kind Kind

	Recipient     string
	UserID        uint
	AppointmentID uint
	// Public appointment reference embedded in the review link.
	AppointmentRef string
	DoctorName     string

	// MarkSent asks the worker to record the review-email-sent flag on the
	// appointment once delivery succeeds (confirmation path only; booking
	// dispatches without it).
	MarkSent bool
}

// Publisher is what the use cases depend on; delivery is never awaited.
type Publisher interface {
	Dispatch(ev Event)
}

// Dispatcher hands events to a single worker goroutine over a bounded
// queue. A full queue drops the event rather than blocking a request.
type Dispatcher struct {
	sender Sender
	store  Store
	queue  chan Event
}

func NewDispatcher(sender Sender, store Store) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		store:  store,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	notifID, err := d.store.Record(ev)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(ev.Kind)).
			Msg("failed to persist notification record")
	}

	if err := d.sender.SendReviewRequest(
		ev.Recipient,
		ev.AppointmentRef,
		ev.DoctorName,
	); err != nil {
		log.Warn().Err(err).
			Str("recipient", ev.Recipient).
			Str("appointment", ev.AppointmentRef).
			Msg("review request delivery failed")
		return
	}

	if notifID != 0 {
		if err := d.store.MarkEmailSent(notifID); err != nil {
			log.Warn().Err(err).Msg("failed to flag notification as sent")
		}
	}

	if ev.MarkSent {
		if err := d.store.MarkReviewEmailSent(ev.AppointmentID); err != nil {
			log.Warn().Err(err).Uint("appointment_id", ev.AppointmentID).
				Msg("failed to record review email sent flag")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Never let a slow mailer break the API.
		log.Warn().Str("kind", string(ev.Kind)).
			Msg("notification queue full, dropping event")
	}
}

var _ Publisher = (*Dispatcher)(nil)
