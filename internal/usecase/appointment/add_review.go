package appointment

import (
	"context"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/timezone"
)

const maxCommentLength = 500

type AddReviewInput struct {
	AppointmentRef string // public id from the review link
	UserID         uint

	Rating  int
	Comment string
}

type AddReview struct {
	repo domain.Repository
	tz   string
}

func NewAddReview(repo domain.Repository, tz string) *AddReview {
	return &AddReview{repo: repo, tz: tz}
}

// Execute attaches a one-time review to a confirmed appointment and
// refreshes the doctor's aggregate rating from a consistent snapshot.
func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) error {

	if in.Rating < 1 || in.Rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	if len(in.Comment) > maxCommentLength {
		return httperr.ErrBusiness("comment_too_long")
	}

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, in.AppointmentRef)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if ap.UserID != in.UserID {
		return httperr.ErrBusiness("forbidden")
	}

	// Reviews are only accepted once the visit was confirmed.
	if domain.Status(ap.Status) != domain.StatusConfirmed {
		return httperr.ErrBusiness("review_not_allowed")
	}

	claimed, err := uc.repo.ClaimReview(
		ctx,
		ap.ID,
		in.Rating,
		in.Comment,
		timezone.NowIn(uc.tz),
	)
	if err != nil {
		return err
	}
	if !claimed {
		return httperr.ErrBusiness("review_already_exists")
	}

	return uc.repo.RecalculateDoctorRating(ctx, ap.DoctorID)
}
