package schedule

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/audit"
	"github.com/BruksfildServices01/agenda-core/internal/cache"
	"github.com/BruksfildServices01/agenda-core/internal/clock"
	domain "github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/models"
	"github.com/BruksfildServices01/agenda-core/internal/timezone"
	ucReminder "github.com/BruksfildServices01/agenda-core/internal/usecase/reminder"
)

type RescheduleAppointmentInput struct {
	BarbershopID  uint
	AppointmentID uint
	Date          string
	Time          string
}

type RescheduleAppointment struct {
	repo            domain.Repository
	availability    *GetAvailableSlots
	scheduleRem     *ucReminder.ScheduleReminder
	cancelReminders *ucReminder.CancelReminders
	audit           *audit.Dispatcher
	cache           *cache.Cache
	clock           clock.Clock
}

func NewRescheduleAppointment(
	repo domain.Repository,
	availability *GetAvailableSlots,
	scheduleRem *ucReminder.ScheduleReminder,
	cancelReminders *ucReminder.CancelReminders,
	auditDispatcher *audit.Dispatcher,
	c *cache.Cache,
	clk clock.Clock,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:            repo,
		availability:    availability,
		scheduleRem:     scheduleRem,
		cancelReminders: cancelReminders,
		audit:           auditDispatcher,
		cache:           c,
		clock:           clk,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.BarbershopID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	newStart, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := clock.NowIn(uc.clock, shop.Timezone)
	if !newStart.After(now) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// O destino passa pelas mesmas regras da criação (expediente,
	// almoço, fixos, conflitos); só o próprio agendamento não bloqueia
	slots, err := uc.availability.Compute(ctx, AvailabilityInput{
		BarbershopID:         in.BarbershopID,
		ServiceID:            ap.ServiceID,
		BarberID:             ap.BarberID,
		Date:                 in.Date,
		ExcludeAppointmentID: ap.ID,
	})
	if err != nil {
		return nil, err
	}

	valid := false
	for _, slot := range slots {
		if slot.Time.Equal(newStart) {
			valid = slot.Available
			break
		}
	}
	if !valid {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if err := domain.Reschedule(ap, newStart, ap.Service.DurationMin); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	// Lembrete antigo vale para o horário antigo: cancela e recria
	if err := uc.cancelReminders.Execute(ctx, ap.ID); err != nil {
		log.Printf("appointment %d: reminder cancellation failed: %v", ap.ID, err)
	}
	if err := uc.scheduleRem.Execute(ctx, ap.ID); err != nil {
		log.Printf("appointment %d: reminder scheduling failed: %v", ap.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "appointment_rescheduled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	uc.cache.InvalidateShop(ctx, in.BarbershopID)

	return ap, nil
}
