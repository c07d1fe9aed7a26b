package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/timezone"
)

type AssignStaffInput struct {
	BarbershopID uint
	ServiceID    uint
	Date         string // "2006-01-02"
	Time         string // "15:04"
}

type AssignStaff struct {
	repo domain.Repository
}

func NewAssignStaff(repo domain.Repository) *AssignStaff {
	return &AssignStaff{repo: repo}
}

// Execute aponta o melhor barbeiro para a janela candidata. ok = false
// significa "sem atribuição automática possível", resultado normal que
// o chamador decide como tratar.
func (uc *AssignStaff) Execute(
	ctx context.Context,
	in AssignStaffInput,
) (uint, bool, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return 0, false, err
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return 0, false, httperr.ErrBusiness("service_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return 0, false, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	barbers, err := uc.repo.ListActiveBarbers(ctx, in.BarbershopID)
	if err != nil {
		return 0, false, err
	}
	if len(barbers) == 0 {
		return 0, false, nil
	}

	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0, start.Location(),
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx, in.BarbershopID, nil, dayStart, dayEnd,
	)
	if err != nil {
		return 0, false, err
	}

	roster := make([]domain.StaffCandidate, 0, len(barbers))
	for _, b := range barbers {
		roster = append(roster, domain.StaffCandidate{
			ID:           b.ID,
			DisplayOrder: b.DisplayOrder,
			Active:       b.Active,
		})
	}

	bookings := make(map[uint][]domain.StaffBooking)
	for _, ap := range appointments {
		if ap.BarberID == nil {
			continue
		}
		bookings[*ap.BarberID] = append(bookings[*ap.BarberID], domain.StaffBooking{
			Start:       ap.StartTime,
			End:         ap.EndTime,
			DurationMin: ap.Service.DurationMin,
		})
	}

	id, ok := domain.SelectBestStaff(
		roster,
		domain.Interval{Start: start, End: end},
		bookings,
	)
	return id, ok, nil
}
