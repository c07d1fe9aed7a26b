package schedule

import (
	"sort"
	"time"
)

// Score sentinela: garante que candidato com conflito nunca vence um
// candidato apenas ocupado
const conflictScore = 10000

type StaffCandidate struct {
	ID           uint
	DisplayOrder int
	Active       bool
}

type StaffBooking struct {
	Start       time.Time
	End         time.Time
	DurationMin int
}

// SelectBestStaff escolhe o barbeiro menos carregado e sem conflito para
// a janela candidata. Devolve (0, false) quando ninguém pode atender;
// resultado normal, não erro.
//
// load = qtd*100 + soma(minutos): cada atendimento existente pesa 100
// pontos fixos (evita fragmentar o dia de uma pessoa) mais sua duração
// (evita empilhar serviços longos em quem já está cheio).
func SelectBestStaff(
	roster []StaffCandidate,
	window Interval,
	bookingsByStaff map[uint][]StaffBooking,
) (uint, bool) {

	var active []StaffCandidate
	for _, s := range roster {
		if s.Active {
			active = append(active, s)
		}
	}

	if len(active) == 0 {
		return 0, false
	}

	// Loja de um barbeiro só: sem pontuação
	if len(active) == 1 {
		return active[0].ID, true
	}

	type scored struct {
		id    uint
		order int
		score int
	}

	ranked := make([]scored, 0, len(active))
	for _, s := range active {
		bookings := bookingsByStaff[s.ID]

		conflict := false
		load := 0
		for _, b := range bookings {
			// sem buffer aqui: sobreposição direta
			if Overlaps(window.Start, window.End, b.Start, b.End) {
				conflict = true
			}
			load += 100 + b.DurationMin
		}

		score := load
		if conflict {
			score = conflictScore
		}

		ranked = append(ranked, scored{id: s.ID, order: s.DisplayOrder, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	best := ranked[0]
	if best.score >= conflictScore {
		return 0, false
	}

	return best.id, true
}
