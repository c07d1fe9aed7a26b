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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BarbershopID uint
	ServiceID    uint

	// Nulo = a loja escolhe (balanceador)
	BarberID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo         domain.Repository
	availability *GetAvailableSlots
	assign       *AssignStaff
	reminders    *ucReminder.ScheduleReminder
	audit        *audit.Dispatcher
	cache        *cache.Cache
	clock        clock.Clock
}

func NewBookAppointment(
	repo domain.Repository,
	availability *GetAvailableSlots,
	assign *AssignStaff,
	reminders *ucReminder.ScheduleReminder,
	auditDispatcher *audit.Dispatcher,
	c *cache.Cache,
	clk clock.Clock,
) *BookAppointment {
	return &BookAppointment{
		repo:         repo,
		availability: availability,
		assign:       assign,
		reminders:    reminders,
		audit:        auditDispatcher,
		cache:        c,
		clock:        clk,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Antecedência mínima
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}
	now := clock.NowIn(uc.clock, shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// Barbeiro: informado ou escolhido pelo balanceador
	barberID := in.BarberID
	if barberID == nil {
		id, ok, err := uc.assign.Execute(ctx, AssignStaffInput{
			BarbershopID: in.BarbershopID,
			ServiceID:    in.ServiceID,
			Date:         in.Date,
			Time:         in.Time,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("no_staff_available")
		}
		barberID = &id
	}

	// O horário pedido precisa ser um slot disponível na grade atual
	// desse barbeiro (passado, expediente, almoço, conflitos, fixos)
	slots, err := uc.availability.Compute(ctx, AvailabilityInput{
		BarbershopID: in.BarbershopID,
		ServiceID:    in.ServiceID,
		BarberID:     barberID,
		Date:         in.Date,
	})
	if err != nil {
		return nil, err
	}

	valid := false
	for _, slot := range slots {
		if slot.Time.Equal(start) {
			valid = slot.Available
			break
		}
	}
	if !valid {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     barberID,
		ClientID:     client.ID,
		ServiceID:    service.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	// Lembrete é best-effort: a falha aqui não desfaz o agendamento
	if err := uc.reminders.Execute(ctx, ap.ID); err != nil {
		log.Printf("appointment %d: reminder scheduling failed: %v", ap.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	uc.cache.InvalidateShop(ctx, in.BarbershopID)

	return ap, nil
}
