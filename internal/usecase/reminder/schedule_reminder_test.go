package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-core/internal/domain/reminder"
	"github.com/BruksfildServices01/agenda-core/internal/models"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

// Repositório em memória só com o que o usecase toca
type memRepo struct {
	appointments map[uint]*models.Appointment
	jobs         []*models.ReminderJob
	cancelled    []uint
}

func newMemRepo() *memRepo {
	return &memRepo{appointments: map[uint]*models.Appointment{}}
}

func (r *memRepo) GetAppointmentContext(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (r *memRepo) HasOpenJob(_ context.Context, appointmentID uint) (bool, error) {
	for _, j := range r.jobs {
		if j.AppointmentID == appointmentID && domain.Open(domain.Status(j.Status)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) CreateJob(_ context.Context, job *models.ReminderJob) error {
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *memRepo) CancelPendingJobs(_ context.Context, appointmentID uint) error {
	r.cancelled = append(r.cancelled, appointmentID)
	for _, j := range r.jobs {
		if j.AppointmentID == appointmentID && j.Status == string(domain.StatusPending) {
			j.Status = string(domain.StatusCancelled)
		}
	}
	return nil
}

func (r *memRepo) ListDueJobs(_ context.Context, _ time.Time) ([]models.ReminderJob, error) {
	return nil, nil
}

func (r *memRepo) ClaimJob(_ context.Context, _ uint, _ string) (bool, error) {
	return false, nil
}

func (r *memRepo) MarkSent(_ context.Context, _ uint, _ time.Time) error { return nil }

func (r *memRepo) MarkFailed(_ context.Context, _ uint, _ string) error { return nil }

var _ domain.Repository = (*memRepo)(nil)

func seed(r *memRepo, id uint, start time.Time, status string, intervalMin int) {
	r.appointments[id] = &models.Appointment{
		ID:        id,
		StartTime: start,
		Status:    status,
		Barbershop: models.Barbershop{
			Timezone:                "UTC",
			ReminderIntervalMinutes: intervalMin,
		},
		Client: models.Client{Phone: "+5511999990000"},
	}
}

func TestScheduleReminder_CreatesPendingJob(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seed(repo, 1, now.Add(3*time.Hour), "pending", 90)

	uc := NewScheduleReminder(repo, fakeClock{now: now})
	require.NoError(t, uc.Execute(context.Background(), 1))

	require.Len(t, repo.jobs, 1)
	job := repo.jobs[0]
	assert.Equal(t, uint(1), job.AppointmentID)
	assert.Equal(t, string(domain.StatusPending), job.Status)
	assert.Equal(t, "+5511999990000", job.Phone)
	// 90 minutos antes do início
	assert.True(t, job.ScheduledFor.Equal(now.Add(90*time.Minute)))
}

func TestScheduleReminder_DefaultTemplateAndInterval(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seed(repo, 1, now.Add(3*time.Hour), "pending", 0)

	uc := NewScheduleReminder(repo, fakeClock{now: now})
	require.NoError(t, uc.Execute(context.Background(), 1))

	require.Len(t, repo.jobs, 1)
	assert.Equal(t, domain.DefaultTemplate, repo.jobs[0].Message)
	assert.True(t, repo.jobs[0].ScheduledFor.Equal(now.Add(2*time.Hour)))
}

func TestScheduleReminder_DuplicateIsNoOp(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seed(repo, 1, now.Add(3*time.Hour), "pending", 60)

	uc := NewScheduleReminder(repo, fakeClock{now: now})
	require.NoError(t, uc.Execute(context.Background(), 1))
	require.NoError(t, uc.Execute(context.Background(), 1))

	assert.Len(t, repo.jobs, 1)
}

func TestScheduleReminder_PastSendTimeIsNoOp(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	// começa em 30min, lembrete de 60min já ficou para trás
	seed(repo, 1, now.Add(30*time.Minute), "pending", 60)

	uc := NewScheduleReminder(repo, fakeClock{now: now})
	require.NoError(t, uc.Execute(context.Background(), 1))

	assert.Empty(t, repo.jobs)
}

func TestScheduleReminder_CancelledAppointmentIsNoOp(t *testing.T) {
	repo := newMemRepo()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	seed(repo, 1, now.Add(3*time.Hour), "cancelled", 60)

	uc := NewScheduleReminder(repo, fakeClock{now: now})
	require.NoError(t, uc.Execute(context.Background(), 1))

	assert.Empty(t, repo.jobs)
}

func TestCancelReminders_CancelsOnlyPending(t *testing.T) {
	repo := newMemRepo()
	repo.jobs = []*models.ReminderJob{
		{ID: 1, AppointmentID: 7, Status: string(domain.StatusPending)},
		{ID: 2, AppointmentID: 7, Status: string(domain.StatusSent)},
	}

	uc := NewCancelReminders(repo)
	require.NoError(t, uc.Execute(context.Background(), 7))

	assert.Equal(t, string(domain.StatusCancelled), repo.jobs[0].Status)
	assert.Equal(t, string(domain.StatusSent), repo.jobs[1].Status)
}
