package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/docpoint/doctor-scheduler/internal/cache"
	"github.com/docpoint/doctor-scheduler/internal/config"
	"github.com/docpoint/doctor-scheduler/internal/handlers"
	infraRepo "github.com/docpoint/doctor-scheduler/internal/infra/repository"
	"github.com/docpoint/doctor-scheduler/internal/middleware"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/notify"
	"github.com/docpoint/doctor-scheduler/internal/storage"
	ucAppointment "github.com/docpoint/doctor-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	mailer := notify.NewSMTPMailer(cfg)
	notifyStore := notify.NewGormStore(db)
	dispatcher := notify.NewDispatcher(mailer, notifyStore)

	rdb := cache.NewClient(cfg.RedisAddr)
	locations := cache.NewLocationCache(db, rdb)

	photos := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	bookedSlotsUC := ucAppointment.NewListBookedSlots(appointmentRepo)

	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		dispatcher,
		cfg.Timezone,
	)

	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, cfg.Timezone)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		dispatcher,
		cfg.Timezone,
	)

	addReviewUC := ucAppointment.NewAddReview(appointmentRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db, photos)
	locationHandler := handlers.NewLocationHandler(locations)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		bookedSlotsUC,
		bookUC,
		listMineUC,
		cancelUC,
		updateStatusUC,
		addReviewUC,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC DIRECTORY
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.GET("/doctors/:id/slots", appointmentHandler.Slots)
		api.GET("/doctors/:id/booked", appointmentHandler.Booked)

		api.GET("/locations/cities", locationHandler.Cities)
		api.GET("/locations/cities/:id/districts", locationHandler.Districts)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/doctors", doctorHandler.Create)
			secured.PATCH("/doctors/:id", doctorHandler.Update)
			secured.POST("/doctors/:id/photo", doctorHandler.UploadPhoto)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/me", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			// :id carries the public reference from the review link.
			secured.POST("/appointments/:id/review", appointmentHandler.AddReview)

			statusUpdate := secured.Group("/")
			statusUpdate.Use(middleware.RequireRole(models.RoleDoctor, models.RoleAdmin))
			{
				statusUpdate.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			}
		}
	}
}
