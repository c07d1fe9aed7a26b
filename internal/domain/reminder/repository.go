package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/models"
)

type Repository interface {
	// Agendamento com Barbershop, Client e Service carregados
	GetAppointmentContext(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// -------- Job (criação / cancelamento) --------
	HasOpenJob(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	CreateJob(
		ctx context.Context,
		job *models.ReminderJob,
	) error

	CancelPendingJobs(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Dispatcher --------
	ListDueJobs(
		ctx context.Context,
		now time.Time,
	) ([]models.ReminderJob, error)

	// ClaimJob é o UPDATE condicional pending → processing. Um único
	// statement atômico: devolve false quando outro worker já levou o
	// job, nunca read-then-write.
	ClaimJob(
		ctx context.Context,
		jobID uint,
		workerID string,
	) (bool, error)

	MarkSent(
		ctx context.Context,
		jobID uint,
		at time.Time,
	) error

	MarkFailed(
		ctx context.Context,
		jobID uint,
		reason string,
	) error
}
