package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/httpresp"
	"github.com/docpoint/doctor-scheduler/internal/middleware"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/storage"
	"github.com/docpoint/doctor-scheduler/internal/validators"
)

type DoctorHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewDoctorHandler(db *gorm.DB, photos *storage.PhotoStore) *DoctorHandler {
	return &DoctorHandler{db: db, photos: photos}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Specialization string `json:"specialization" binding:"required"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Phone          string `json:"phone"`

	Street       string `json:"street"`
	CityCode     string `json:"city_code"`
	CityName     string `json:"city_name"`
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`

	AvailableDays []string `json:"available_days"`
	HoursStart    string   `json:"hours_start"`
	HoursEnd      string   `json:"hours_end"`

	ConsultationFee float64 `json:"consultation_fee"`
}

type UpdateDoctorRequest struct {
	Specialization  *string  `json:"specialization"`
	Experience      *string  `json:"experience"`
	Education       *string  `json:"education"`
	Phone           *string  `json:"phone"`
	HoursStart      *string  `json:"hours_start"`
	HoursEnd        *string  `json:"hours_end"`
	ConsultationFee *float64 `json:"consultation_fee"`
}

// ======================================================
// DIRECTORY
// ======================================================

// List returns approved doctors, optionally narrowed by specialization or
// city.
func (h *DoctorHandler) List(c *gin.Context) {
	q := h.db.Where("status = ?", models.DoctorStatusApproved)

	if spec := strings.TrimSpace(strings.ToLower(c.Query("specialization"))); spec != "" {
		q = q.Where("LOWER(specialization) = ?", spec)
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("city_code = ?", city)
	}

	var doctors []models.Doctor
	if err := q.Order("rating DESC, id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	var doc models.Doctor
	if err := h.db.Preload("User").First(&doc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doc)
}

// ======================================================
// PROFILE
// ======================================================

// Create registers the acting user's doctor profile in pending status and
// flips the user's role.
func (h *DoctorHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).
		Where("user_id = ? OR email = ?", userID, email).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "doctor_already_exists", "A doctor profile already exists.")
		return
	}

	doc := models.Doctor{
		UserID:          userID,
		FullName:        req.FullName,
		Email:           email,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		Education:       req.Education,
		Phone:           req.Phone,
		Street:          req.Street,
		CityCode:        req.CityCode,
		CityName:        req.CityName,
		DistrictCode:    req.DistrictCode,
		DistrictName:    req.DistrictName,
		AvailableDays:   strings.Join(req.AvailableDays, ","),
		HoursStart:      req.HoursStart,
		HoursEnd:        req.HoursEnd,
		ConsultationFee: req.ConsultationFee,
		Status:          models.DoctorStatusPending,
	}

	if err := h.db.Create(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor profile.")
		return
	}

	h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", models.RoleDoctor)

	httpresp.Created(c, doc)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	doc, ok := h.ownDoctor(c, userID)
	if !ok {
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	updates := map[string]any{}
	if req.Specialization != nil {
		updates["specialization"] = *req.Specialization
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.Education != nil {
		updates["education"] = *req.Education
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.HoursStart != nil {
		updates["hours_start"] = *req.HoursStart
	}
	if req.HoursEnd != nil {
		updates["hours_end"] = *req.HoursEnd
	}
	if req.ConsultationFee != nil {
		updates["consultation_fee"] = *req.ConsultationFee
	}

	if len(updates) > 0 {
		if err := h.db.Model(doc).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_doctor", "Could not update doctor profile.")
			return
		}
	}

	httpresp.OK(c, doc)
}

// ======================================================
// PHOTO
// ======================================================

func (h *DoctorHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	doc, ok := h.ownDoctor(c, userID)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadDoctorPhoto(c.Request.Context(), doc.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	if err := h.db.Model(doc).Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not save the photo URL.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}

func (h *DoctorHandler) ownDoctor(c *gin.Context, userID uint) (*models.Doctor, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return nil, false
	}

	var doc models.Doctor
	if err := h.db.First(&doc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return nil, false
	}

	if doc.UserID != userID {
		httperr.Forbidden(c, "not_profile_owner", "Only the profile owner can do this.")
		return nil, false
	}

	return &doc, true
}
