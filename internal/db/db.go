package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/docpoint/doctor-scheduler/internal/config"
	"github.com/docpoint/doctor-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Notification{},
		&models.City{},
		&models.District{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Storage-level conflict guards. The booking flow treats a violation of
	// these as the authoritative slot-taken / double-booked signal; the
	// application-level pre-checks only exist for a faster error message.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_doctor_slot
        ON appointments (doctor_id, date, slot_time)
        WHERE status IN ('pending', 'confirmed')
    `)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_user_slot
        ON appointments (user_id, date, slot_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
