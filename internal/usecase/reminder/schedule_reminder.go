package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/clock"
	domain "github.com/BruksfildServices01/agenda-core/internal/domain/reminder"
	"github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/models"
)

type ScheduleReminder struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewScheduleReminder(repo domain.Repository, clk clock.Clock) *ScheduleReminder {
	return &ScheduleReminder{repo: repo, clock: clk}
}

// Execute agenda o lembrete de um agendamento. É no-op silencioso
// quando o momento de envio já passou (lembrete atrasado não serve para
// nada) e quando já existe job aberto para o agendamento (evita
// lembrete duplicado em booking reenviado).
func (uc *ScheduleReminder) Execute(
	ctx context.Context,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentContext(ctx, appointmentID)
	if err != nil {
		return err
	}

	if ap.Status == string(schedule.StatusCancelled) {
		return nil
	}

	interval := ap.Barbershop.ReminderIntervalMinutes
	if interval <= 0 {
		interval = 60
	}

	scheduledFor := ap.StartTime.Add(-time.Duration(interval) * time.Minute)
	if !scheduledFor.After(clock.NowIn(uc.clock, ap.Barbershop.Timezone)) {
		return nil
	}

	open, err := uc.repo.HasOpenJob(ctx, ap.ID)
	if err != nil {
		return err
	}
	if open {
		return nil
	}

	template := ap.Barbershop.ReminderTemplate
	if template == "" {
		template = domain.DefaultTemplate
	}

	job := &models.ReminderJob{
		AppointmentID: ap.ID,
		ScheduledFor:  scheduledFor,
		Message:       template,
		Phone:         ap.Client.Phone,
		Status:        string(domain.StatusPending),
	}

	return uc.repo.CreateJob(ctx, job)
}
