package schedule

import (
	"context"
	"log"

	"github.com/BruksfildServices01/agenda-core/internal/audit"
	"github.com/BruksfildServices01/agenda-core/internal/cache"
	"github.com/BruksfildServices01/agenda-core/internal/clock"
	domain "github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/models"
	ucReminder "github.com/BruksfildServices01/agenda-core/internal/usecase/reminder"
)

type CancelAppointment struct {
	repo      domain.Repository
	reminders *ucReminder.CancelReminders
	audit     *audit.Dispatcher
	cache     *cache.Cache
	clock     clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	reminders *ucReminder.CancelReminders,
	auditDispatcher *audit.Dispatcher,
	c *cache.Cache,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     auditDispatcher,
		cache:     c,
		clock:     clk,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, barbershopID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := clock.NowIn(uc.clock, shop.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Lembrete pendente morre junto; em processing termina sozinho.
	// Falha aqui não desfaz o cancelamento: o dispatcher descarta o job
	// de agendamento cancelado na hora do envio
	if err := uc.reminders.Execute(ctx, ap.ID); err != nil {
		log.Printf("appointment %d: reminder cancellation failed: %v", ap.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	uc.cache.InvalidateShop(ctx, barbershopID)

	return ap, nil
}
