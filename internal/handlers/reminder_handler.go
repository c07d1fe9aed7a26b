package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-core/internal/httpresp"
	ucReminder "github.com/BruksfildServices01/agenda-core/internal/usecase/reminder"
)

type ReminderHandler struct {
	schedule *ucReminder.ScheduleReminder
	cancel   *ucReminder.CancelReminders
}

func NewReminderHandler(
	schedule *ucReminder.ScheduleReminder,
	cancel *ucReminder.CancelReminders,
) *ReminderHandler {
	return &ReminderHandler{
		schedule: schedule,
		cancel:   cancel,
	}
}

// POST /api/appointments/:id/reminders
//
// Idempotente: com job aberto para o agendamento, ou com o horário de
// envio já no passado, nada é criado e a resposta é a mesma.
func (h *ReminderHandler) Schedule(c *gin.Context) {
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.schedule.Execute(c.Request.Context(), apID); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

// DELETE /api/appointments/:id/reminders
func (h *ReminderHandler) Cancel(c *gin.Context) {
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), apID); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
