package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// Sem registro para o dia = fechado; devolve (nil, nil), não erro
	GetOperatingHours(
		ctx context.Context,
		barbershopID uint,
		weekday int,
	) (*models.OperatingHours, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Barber, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Agenda (leitura) --------
	// Agendamentos não cancelados do dia; barberID nulo = todos os barbeiros
	ListAppointmentsForDay(
		ctx context.Context,
		barbershopID uint,
		barberID *uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListRecurringForWeekday(
		ctx context.Context,
		barbershopID uint,
		barberID *uint,
		weekday int,
	) ([]models.RecurringAppointment, error)

	// -------- Appointment (escrita) --------
	// Verifica conflito (FOR UPDATE) e insere na mesma transação
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Mesma verificação, ignorando o próprio agendamento
	SaveAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsByDate(
		ctx context.Context,
		barbershopID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)
}
