package reminder

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-core/internal/clock"
	domain "github.com/BruksfildServices01/agenda-core/internal/domain/reminder"
	"github.com/BruksfildServices01/agenda-core/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-core/internal/gateway"
	"github.com/BruksfildServices01/agenda-core/internal/models"
	"github.com/BruksfildServices01/agenda-core/internal/timezone"
)

// Dispatcher é o worker de lembretes. Roda em loop próprio, tolera
// múltiplas instâncias: a exclusividade vem do claim condicional no
// store, não de lock em memória.
type Dispatcher struct {
	store    domain.Repository
	gateway  gateway.Gateway
	clock    clock.Clock
	interval time.Duration

	// Identifica esta instância nos jobs reivindicados
	workerID string
}

func NewDispatcher(
	store domain.Repository,
	gw gateway.Gateway,
	clk clock.Clock,
	interval time.Duration,
) *Dispatcher {

	if interval <= 0 {
		interval = 60 * time.Second
	}

	return &Dispatcher{
		store:    store,
		gateway:  gw,
		clock:    clk,
		interval: interval,
		workerID: uuid.NewString(),
	}
}

// Run processa imediatamente e depois a cada intervalo, até o contexto
// ser cancelado.
func (d *Dispatcher) Run(ctx context.Context) {
	log.Printf("reminder dispatcher %s started (every %s)", d.workerID, d.interval)

	d.tick(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("reminder dispatcher %s stopped", d.workerID)
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) {
	if err := d.ProcessDue(ctx); err != nil {
		log.Println("reminder tick error:", err)
	}
}

// ProcessDue executa um tick: busca jobs vencidos e processa cada um de
// forma independente: a falha de um job nunca impede os demais.
// Exportado para os testes dirigirem o loop sem timer de verdade.
func (d *Dispatcher) ProcessDue(ctx context.Context) error {
	jobs, err := d.store.ListDueJobs(ctx, d.clock.Now())
	if err != nil {
		return err
	}

	for _, job := range jobs {
		d.process(ctx, job)
	}
	return nil
}

func (d *Dispatcher) process(ctx context.Context, job models.ReminderJob) {
	claimed, err := d.store.ClaimJob(ctx, job.ID, d.workerID)
	if err != nil {
		log.Printf("reminder job %d claim error: %v", job.ID, err)
		return
	}
	if !claimed {
		// outro worker levou, não é erro
		return
	}

	ap, err := d.store.GetAppointmentContext(ctx, job.AppointmentID)
	if err != nil {
		d.fail(ctx, job.ID, "appointment not found")
		return
	}

	// Job que sobreviveu a um cancelamento nunca envia
	if ap.Status == string(schedule.StatusCancelled) {
		d.fail(ctx, job.ID, "appointment cancelled")
		return
	}

	if !ap.Barbershop.WhatsappConnected {
		d.fail(ctx, job.ID, "channel not connected")
		return
	}

	text := domain.RenderMessage(job.Message, domain.MessageData{
		ClientName:  ap.Client.Name,
		ServiceName: ap.Service.Name,
		Start:       ap.StartTime.In(timezone.Location(ap.Barbershop.Timezone)),
	})

	if err := d.gateway.Send(ctx, job.Phone, text); err != nil {
		d.fail(ctx, job.ID, err.Error())
		return
	}

	if err := d.store.MarkSent(ctx, job.ID, d.clock.Now()); err != nil {
		log.Printf("reminder job %d mark sent error: %v", job.ID, err)
	}
}

func (d *Dispatcher) fail(ctx context.Context, jobID uint, reason string) {
	if err := d.store.MarkFailed(ctx, jobID, reason); err != nil {
		log.Printf("reminder job %d mark failed error: %v", jobID, err)
	}
}
