package schedule

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	// segunda-feira
	return time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
}

func baseInput(t *testing.T) AvailabilityInput {
	t.Helper()
	return AvailabilityInput{
		Date:        day(t),
		WorkStart:   "09:00",
		WorkEnd:     "18:00",
		DurationMin: 30,
		Now:         day(t), // meia-noite: nenhum slot no passado
	}
}

func TestComputeSlots_ClosedDay(t *testing.T) {
	in := baseInput(t)
	in.WorkStart = ""
	in.WorkEnd = ""

	slots := ComputeSlots(in)
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestComputeSlots_NeverOverflowsClosingTime(t *testing.T) {
	in := baseInput(t)
	slots := ComputeSlots(in)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	closing := day(t).Add(18 * time.Hour)
	duration := 30 * time.Minute
	for _, s := range slots {
		if s.Time.Add(duration).After(closing) {
			t.Fatalf("slot %v overflows closing time", s.Time)
		}
	}
}

func TestComputeSlots_StepIsDurationPlusBuffer(t *testing.T) {
	in := baseInput(t)
	slots := ComputeSlots(in)
	if len(slots) < 2 {
		t.Fatalf("expected at least 2 slots, got %d", len(slots))
	}

	step := 35 * time.Minute // 30 + 5 de buffer
	for i := 1; i < len(slots); i++ {
		if got := slots[i].Time.Sub(slots[i-1].Time); got != step {
			t.Fatalf("expected step %v between slots, got %v", step, got)
		}
	}
}

func TestComputeSlots_ServiceLongerThanDay(t *testing.T) {
	in := baseInput(t)
	in.DurationMin = 10 * 60 // 10h num expediente de 9h

	slots := ComputeSlots(in)
	if len(slots) != 0 {
		t.Fatalf("expected no candidates, got %d", len(slots))
	}
}

func TestComputeSlots_LunchExclusion(t *testing.T) {
	in := baseInput(t)
	in.LunchStart = "12:00"
	in.LunchEnd = "13:00"
	in.LunchEnabled = true

	slots := ComputeSlots(in)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time.Format("15:04")] = s.Available
	}

	// 11:55 termina 12:25, dentro do almoço
	if avail, ok := byTime["11:55"]; !ok || avail {
		t.Fatalf("expected 11:55 unavailable, got ok=%v avail=%v", ok, avail)
	}
	// 12:30 termina 13:00, intervalo semiaberto ainda invade o almoço
	if avail, ok := byTime["12:30"]; !ok || avail {
		t.Fatalf("expected 12:30 unavailable, got ok=%v avail=%v", ok, avail)
	}
	// 13:05 é o primeiro candidato depois do almoço
	if avail, ok := byTime["13:05"]; !ok || !avail {
		t.Fatalf("expected 13:05 available, got ok=%v avail=%v", ok, avail)
	}
}

func TestComputeSlots_LunchDisabledIsIgnored(t *testing.T) {
	in := baseInput(t)
	in.LunchStart = "12:00"
	in.LunchEnd = "13:00"
	in.LunchEnabled = false

	for _, s := range ComputeSlots(in) {
		if !s.Available {
			t.Fatalf("expected every slot available with lunch disabled, %v is not", s.Time)
		}
	}
}

func TestComputeSlots_PastTimeExclusion(t *testing.T) {
	in := baseInput(t)
	in.Now = day(t).Add(14*time.Hour + 32*time.Minute)

	for _, s := range ComputeSlots(in) {
		inPast := !s.Time.After(in.Now)
		if inPast && s.Available {
			t.Fatalf("slot %v starts at or before now and must be unavailable", s.Time)
		}
		if !inPast && !s.Available {
			t.Fatalf("slot %v is in the future and has no conflicts", s.Time)
		}
	}
}

func TestComputeSlots_BusyOverlap(t *testing.T) {
	in := baseInput(t)
	// agendamento 10:00–10:30 + buffer
	in.Busy = []Interval{
		{Start: day(t).Add(10 * time.Hour), End: day(t).Add(10*time.Hour + 35*time.Minute)},
	}

	slots := ComputeSlots(in)

	for _, s := range slots {
		end := s.Time.Add(30 * time.Minute)
		overlapsBusy := Overlaps(s.Time, end, in.Busy[0].Start, in.Busy[0].End)
		if overlapsBusy && s.Available {
			t.Fatalf("slot %v overlaps busy interval and must be unavailable", s.Time)
		}
	}

	// nenhum candidato é omitido: a grade continua completa
	if len(slots) == 0 {
		t.Fatal("expected the full candidate grid, busy or not")
	}
	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
		}
	}
	if unavailable == 0 {
		t.Fatal("expected at least one unavailable slot")
	}
}

func TestComputeSlots_Idempotent(t *testing.T) {
	in := baseInput(t)
	in.LunchStart = "12:00"
	in.LunchEnd = "13:00"
	in.LunchEnabled = true
	in.Busy = []Interval{
		{Start: day(t).Add(9 * time.Hour), End: day(t).Add(9*time.Hour + 35*time.Minute)},
	}

	first := ComputeSlots(in)
	second := ComputeSlots(in)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Time.Equal(second[i].Time) || first[i].Available != second[i].Available {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}

func TestBuildBusyIntervals_SkipsCancelled(t *testing.T) {
	appointments := []models.Appointment{
		{
			Status:    string(StatusCancelled),
			StartTime: day(t).Add(10 * time.Hour),
			EndTime:   day(t).Add(10*time.Hour + 30*time.Minute),
		},
		{
			Status:    string(StatusConfirmed),
			StartTime: day(t).Add(14 * time.Hour),
			EndTime:   day(t).Add(14*time.Hour + 30*time.Minute),
		},
	}

	busy := BuildBusyIntervals(day(t), appointments, nil)
	if len(busy) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(busy))
	}
	// buffer de 5 minutos anexado ao fim
	if !busy[0].End.Equal(day(t).Add(14*time.Hour + 35*time.Minute)) {
		t.Fatalf("expected buffered end 14:35, got %v", busy[0].End)
	}
}

func TestBuildBusyIntervals_RecurringMaterializes(t *testing.T) {
	start := day(t).AddDate(0, -1, 0)
	rec := models.RecurringAppointment{
		Weekday:   1, // segunda
		TimeOfDay: "10:00",
		StartDate: start,
		Active:    true,
		Service:   models.Service{DurationMin: 45},
	}

	busy := BuildBusyIntervals(day(t), nil, []models.RecurringAppointment{rec})
	if len(busy) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(busy))
	}
	if !busy[0].Start.Equal(day(t).Add(10 * time.Hour)) {
		t.Fatalf("expected start 10:00, got %v", busy[0].Start)
	}
	if !busy[0].End.Equal(day(t).Add(10*time.Hour + 50*time.Minute)) {
		t.Fatalf("expected buffered end 10:50, got %v", busy[0].End)
	}
}

func TestBuildBusyIntervals_RecurringOutsideWindow(t *testing.T) {
	future := day(t).AddDate(0, 1, 0)
	ended := day(t).AddDate(0, -1, 0)

	recs := []models.RecurringAppointment{
		{Weekday: 1, TimeOfDay: "10:00", StartDate: future, Active: true,
			Service: models.Service{DurationMin: 30}},
		{Weekday: 1, TimeOfDay: "11:00", StartDate: day(t).AddDate(0, -2, 0),
			EndDate: &ended, Active: true, Service: models.Service{DurationMin: 30}},
		{Weekday: 2, TimeOfDay: "12:00", StartDate: day(t).AddDate(0, -2, 0),
			Active: true, Service: models.Service{DurationMin: 30}},
		{Weekday: 1, TimeOfDay: "13:00", StartDate: day(t).AddDate(0, -2, 0),
			Active: false, Service: models.Service{DurationMin: 30}},
	}

	busy := BuildBusyIntervals(day(t), nil, recs)
	if len(busy) != 0 {
		t.Fatalf("expected no intervals, got %d", len(busy))
	}
}
