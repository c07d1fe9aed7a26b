package reminder

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-core/internal/domain/reminder"
)

type CancelReminders struct {
	repo domain.Repository
}

func NewCancelReminders(repo domain.Repository) *CancelReminders {
	return &CancelReminders{repo: repo}
}

// Execute cancela os lembretes pendentes de um agendamento. Job já em
// processing segue em frente: envio em andamento não é interrompido.
func (uc *CancelReminders) Execute(
	ctx context.Context,
	appointmentID uint,
) error {
	return uc.repo.CancelPendingJobs(ctx, appointmentID)
}
