package schedule

import (
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/models"
)

const (
	// Intervalo de respiro entre atendimentos, só para detecção de
	// colisão; o cliente não enxerga o buffer
	BufferMinutes = 5

	// Alinhamento dos horários candidatos
	SnapMinutes = 5
)

type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

type AvailabilityInput struct {
	// Meia-noite do dia consultado, no fuso da barbearia
	Date time.Time

	// Expediente do dia ("15:04"); vazio = fechado
	WorkStart string
	WorkEnd   string

	LunchStart   string
	LunchEnd     string
	LunchEnabled bool

	DurationMin int

	// Intervalos ocupados já com buffer aplicado (ver BuildBusyIntervals);
	// o merge acontece aqui dentro
	Busy []Interval

	Now time.Time
}

// ComputeSlots calcula a grade de horários do dia. Função pura: não faz
// I/O, não altera a entrada e é determinística para entradas fixas.
//
// Todos os candidatos são devolvidos, inclusive os indisponíveis: a
// tela de agendamento precisa deles para renderizar as linhas apagadas.
func ComputeSlots(in AvailabilityInput) []Slot {
	if in.WorkStart == "" || in.WorkEnd == "" || in.DurationMin <= 0 {
		return []Slot{}
	}

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			in.Date.Location(),
		), true
	}

	dayStart, ok := parseHM(in.WorkStart)
	if !ok {
		return []Slot{}
	}
	dayEnd, ok := parseHM(in.WorkEnd)
	if !ok || !dayEnd.After(dayStart) {
		return []Slot{}
	}

	hasLunch := in.LunchEnabled && in.LunchStart != "" && in.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart, ok = parseHM(in.LunchStart)
		if ok {
			lunchEnd, ok = parseHM(in.LunchEnd)
		}
		hasLunch = ok
	}

	busy := MergeIntervals(in.Busy)

	duration := time.Duration(in.DurationMin) * time.Minute
	step := duration + BufferMinutes*time.Minute

	slots := []Slot{}
	for cur := SnapForward(dayStart, SnapMinutes); !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {
		slotEnd := cur.Add(duration)
		available := true

		// passado
		if !cur.After(in.Now) {
			available = false
		}

		// conflito com agenda
		if available {
			for _, b := range busy {
				if Overlaps(cur, slotEnd, b.Start, b.End) {
					available = false
					break
				}
			}
		}

		// almoço
		if available && hasLunch && Overlaps(cur, slotEnd, lunchStart, lunchEnd) {
			available = false
		}

		slots = append(slots, Slot{Time: cur, Available: available})
	}

	return slots
}

// BuildBusyIntervals converte agendamentos do dia e compromissos fixos
// em intervalos ocupados, cada um estendido pelo buffer. Agendamentos
// cancelados nunca ocupam tempo.
func BuildBusyIntervals(
	date time.Time,
	appointments []models.Appointment,
	recurring []models.RecurringAppointment,
) []Interval {

	buffer := BufferMinutes * time.Minute
	var busy []Interval

	for _, ap := range appointments {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		busy = append(busy, Interval{
			Start: ap.StartTime,
			End:   ap.EndTime.Add(buffer),
		})
	}

	for _, rec := range recurring {
		if !recurringCovers(rec, date) {
			continue
		}

		t, err := time.Parse("15:04", rec.TimeOfDay)
		if err != nil {
			continue
		}
		start := time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			date.Location(),
		)

		durMin := rec.Service.DurationMin
		if durMin <= 0 {
			continue
		}

		busy = append(busy, Interval{
			Start: start,
			End:   start.Add(time.Duration(durMin)*time.Minute + buffer),
		})
	}

	return busy
}

func recurringCovers(rec models.RecurringAppointment, date time.Time) bool {
	if !rec.Active {
		return false
	}
	if int(date.Weekday()) != rec.Weekday {
		return false
	}

	y, m, d := rec.StartDate.Date()
	startDay := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	if date.Before(startDay) {
		return false
	}

	if rec.EndDate != nil {
		y, m, d = rec.EndDate.Date()
		endDay := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
		if date.After(endDay) {
			return false
		}
	}

	return true
}
