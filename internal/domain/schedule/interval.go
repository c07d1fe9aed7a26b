package schedule

import (
	"sort"
	"time"
)

// Intervalo semiaberto [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps testa sobreposição de intervalos semiabertos.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// MergeIntervals colapsa intervalos ocupados em um conjunto mínimo
// ordenado e sem sobreposição. Intervalos encostados (fim == início)
// também são fundidos. Não altera o slice de entrada.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// SnapForward avança t até o próximo múltiplo de snapMinutes.
// Horários já alinhados ficam como estão.
func SnapForward(t time.Time, snapMinutes int) time.Time {
	if snapMinutes <= 0 {
		snapMinutes = SnapMinutes
	}

	rem := t.Minute() % snapMinutes
	if rem == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}

	delta := snapMinutes - rem
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute()+delta, 0, 0,
		t.Location(),
	)
}
