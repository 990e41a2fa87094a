package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/httpresp"
	"github.com/docpoint/doctor-scheduler/internal/middleware"
	"github.com/docpoint/doctor-scheduler/internal/timezone"
	ucAppointment "github.com/docpoint/doctor-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	bookedSlots  *ucAppointment.ListBookedSlots
	book         *ucAppointment.BookAppointment
	listMine     *ucAppointment.ListMyAppointments
	cancel       *ucAppointment.CancelAppointment
	updateStatus *ucAppointment.UpdateStatus
	addReview    *ucAppointment.AddReview

	tz string
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	bookedSlots *ucAppointment.ListBookedSlots,
	book *ucAppointment.BookAppointment,
	listMine *ucAppointment.ListMyAppointments,
	cancel *ucAppointment.CancelAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	addReview *ucAppointment.AddReview,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		bookedSlots:  bookedSlots,
		book:         book,
		listMine:     listMine,
		cancel:       cancel,
		updateStatus: updateStatus,
		addReview:    addReview,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	doctorID, ok := paramID(c, "id")
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		doctorID,
		timezone.NowIn(h.tz),
		days,
	)
	if err != nil {
		if httperr.IsBusiness(err, "doctor_not_found") {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AppointmentHandler) Booked(c *gin.Context) {
	doctorID, ok := paramID(c, "id")
	if !ok {
		return
	}

	slots, err := h.bookedSlots.Execute(
		c.Request.Context(),
		doctorID,
		timezone.NowIn(h.tz),
	)
	if err != nil {
		if httperr.IsBusiness(err, "doctor_not_found") {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		httperr.Internal(c, "booked_slots_failed", "Could not list booked slots.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// BOOKING
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		DoctorID: req.DoctorID,
		UserID:   userID,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "invalid_date_or_time":
			httperr.BadRequest(c, code, "Invalid date or time.")
		case "slot_taken":
			httperr.Conflict(c, code, "Appointment slot is full. Please select another time.")
		case "user_double_booked":
			httperr.Conflict(c, code, "You already have another appointment scheduled for this time.")
		case "doctor_not_found":
			httperr.NotFound(c, code, "Doctor not found.")
		case "user_not_found":
			httperr.NotFound(c, code, "User not found.")
		default:
			httperr.Internal(c, "booking_failed", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), appointmentID, userID, role)
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Appointment not found.")
		case "invalid_state":
			httperr.Conflict(c, code, "Appointment can no longer be cancelled.")
		case "too_late":
			httperr.Conflict(c, code, "The appointment time has already passed.")
		default:
			httperr.Internal(c, "cancel_failed", "Could not cancel appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	// The legacy client sends "approved" for confirmation.
	status := domain.Status(req.Status)
	if req.Status == "approved" {
		status = domain.StatusConfirmed
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), appointmentID, status)
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Appointment not found.")
		case "invalid_state", "too_late":
			httperr.Conflict(c, code, "Transition not allowed.")
		case "invalid_status":
			httperr.BadRequest(c, code, "Unknown target status.")
		default:
			httperr.Internal(c, "status_update_failed", "Could not update appointment status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// REVIEW
// ======================================================

func (h *AppointmentHandler) AddReview(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating is required.")
		return
	}

	err := h.addReview.Execute(c.Request.Context(), ucAppointment.AddReviewInput{
		AppointmentRef: c.Param("id"),
		UserID:         userID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "invalid_rating":
			httperr.BadRequest(c, code, "Rating must be between 1 and 5.")
		case "comment_too_long":
			httperr.BadRequest(c, code, "Comment is limited to 500 characters.")
		case "appointment_not_found":
			httperr.NotFound(c, code, "Appointment not found.")
		case "forbidden":
			httperr.Forbidden(c, code, "Only the appointment owner can review it.")
		case "review_not_allowed":
			httperr.Conflict(c, code, "Reviews are only accepted for confirmed appointments.")
		case "review_already_exists":
			httperr.Conflict(c, code, "This appointment already has a review.")
		default:
			httperr.Internal(c, "review_failed", "Could not submit review.")
		}
		return
	}

	httpresp.OK(c, gin.H{"message": "Review submitted successfully"})
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}
