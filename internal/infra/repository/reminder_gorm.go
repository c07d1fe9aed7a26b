package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-core/internal/domain/reminder"
	"github.com/BruksfildServices01/agenda-core/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) GetAppointmentContext(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Preload("Client").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Job (criação / cancelamento)
// --------------------------------------------------

func (r *ReminderGormRepository) HasOpenJob(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReminderJob{}).
		Where(
			"appointment_id = ? AND status IN ?",
			appointmentID,
			[]string{string(domain.StatusPending), string(domain.StatusProcessing)},
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReminderGormRepository) CreateJob(
	ctx context.Context,
	job *models.ReminderJob,
) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// CancelPendingJobs só alcança jobs pending: um job já processing está
// com envio em andamento e termina do jeito que terminar.
func (r *ReminderGormRepository) CancelPendingJobs(
	ctx context.Context,
	appointmentID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.ReminderJob{}).
		Where(
			"appointment_id = ? AND status = ?",
			appointmentID, string(domain.StatusPending),
		).
		Update("status", string(domain.StatusCancelled)).Error
}

// --------------------------------------------------
// Dispatcher
// --------------------------------------------------

func (r *ReminderGormRepository) ListDueJobs(
	ctx context.Context,
	now time.Time,
) ([]models.ReminderJob, error) {

	var jobs []models.ReminderJob
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND scheduled_for <= ?",
			string(domain.StatusPending), now,
		).
		Order("scheduled_for ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClaimJob: UPDATE condicional em um statement só. RowsAffected zero =
// outro worker chegou primeiro.
func (r *ReminderGormRepository) ClaimJob(
	ctx context.Context,
	jobID uint,
	workerID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.ReminderJob{}).
		Where("id = ? AND status = ?", jobID, string(domain.StatusPending)).
		Updates(map[string]any{
			"status":     string(domain.StatusProcessing),
			"claimed_by": workerID,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ReminderGormRepository) MarkSent(
	ctx context.Context,
	jobID uint,
	at time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.ReminderJob{}).
		Where("id = ? AND status = ?", jobID, string(domain.StatusProcessing)).
		Updates(map[string]any{
			"status":  string(domain.StatusSent),
			"sent_at": at,
		}).Error
}

func (r *ReminderGormRepository) MarkFailed(
	ctx context.Context,
	jobID uint,
	reason string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.ReminderJob{}).
		Where("id = ? AND status = ?", jobID, string(domain.StatusProcessing)).
		Updates(map[string]any{
			"status":       string(domain.StatusFailed),
			"error_reason": reason,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
