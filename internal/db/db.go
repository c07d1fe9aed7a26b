package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-core/internal/config"
	"github.com/BruksfildServices01/agenda-core/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.OperatingHours{},
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.RecurringAppointment{},
		&models.ReminderJob{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		log.Fatalf("failed to backfill timezones: %v", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(appointmentsNoOverlapDDL).Error; err != nil {
		log.Fatalf("failed to create exclusion constraint: %v", err)
	}

	return db
}

// Constraint de exclusão: dois agendamentos não-cancelados do mesmo
// barbeiro nunca se sobrepõem, mesmo com duas gravações simultâneas.
// Violação chega como SQLSTATE 23P01 (httperr.IsExclusionConflict).
//
// start_time/end_time são timestamptz (gorm mapeia time.Time assim),
// então o range é tstzrange.
const appointmentsNoOverlapDDL = `
    DO $$
    BEGIN
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            barber_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status <> 'cancelled' AND barber_id IS NOT NULL);
    EXCEPTION
        WHEN duplicate_object OR duplicate_table THEN NULL;
    END
    $$
`
