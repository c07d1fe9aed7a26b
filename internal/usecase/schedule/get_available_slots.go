package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/cache"
	"github.com/BruksfildServices01/agenda-core/internal/clock"
	domain "github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/timezone"
)

const availabilityTTL = 60 * time.Second

type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint

	// Nulo = agenda da loja inteira (loja de um barbeiro só)
	BarberID *uint

	Date string // "2006-01-02"

	// Zero = nenhum. Na remarcação, o próprio agendamento não pode
	// bloquear o horário de destino.
	ExcludeAppointmentID uint
}

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.Cache
	clock clock.Clock
}

func NewGetAvailableSlots(
	repo domain.Repository,
	c *cache.Cache,
	clk clock.Clock,
) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, cache: c, clock: clk}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	// Grade com exclusão é transitória (remarcação), nunca cacheia
	if in.ExcludeAppointmentID != 0 {
		return uc.Compute(ctx, in)
	}

	var barberID uint
	if in.BarberID != nil {
		barberID = *in.BarberID
	}

	key := cache.AvailabilityKey(in.BarbershopID, in.ServiceID, barberID, in.Date)
	var cached []domain.Slot
	if err := uc.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	slots, err := uc.Compute(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, key, slots, availabilityTTL)
	return slots, nil
}

// Compute calcula a grade sem passar pelo cache. O fluxo de booking usa
// este caminho para validar o horário pedido contra o estado atual.
func (uc *GetAvailableSlots) Compute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(shop.Timezone)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if in.BarberID != nil {
		barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, *in.BarberID)
		if err != nil || !barber.Active {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
	}

	weekday := int(date.Weekday())

	oh, err := uc.repo.GetOperatingHours(ctx, in.BarbershopID, weekday)
	if err != nil {
		return nil, err
	}
	if oh == nil || !oh.Active {
		// fechado nesse dia
		return []domain.Slot{}, nil
	}

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx, in.BarbershopID, in.BarberID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, err
	}

	if in.ExcludeAppointmentID != 0 {
		kept := appointments[:0]
		for _, ap := range appointments {
			if ap.ID != in.ExcludeAppointmentID {
				kept = append(kept, ap)
			}
		}
		appointments = kept
	}

	recurring, err := uc.repo.ListRecurringForWeekday(
		ctx, in.BarbershopID, in.BarberID, weekday,
	)
	if err != nil {
		return nil, err
	}

	busy := domain.BuildBusyIntervals(date, appointments, recurring)

	slots := domain.ComputeSlots(domain.AvailabilityInput{
		Date:         date,
		WorkStart:    oh.StartTime,
		WorkEnd:      oh.EndTime,
		LunchStart:   shop.LunchStart,
		LunchEnd:     shop.LunchEnd,
		LunchEnabled: shop.LunchEnabled,
		DurationMin:  service.DurationMin,
		Busy:         busy,
		Now:          clock.NowIn(uc.clock, shop.Timezone),
	})

	return slots, nil
}
