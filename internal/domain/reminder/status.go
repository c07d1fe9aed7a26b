package reminder

// ===============================
// ReminderJob Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Terminal indica estado final: o job nunca mais muda
func Terminal(s Status) bool {
	return s == StatusSent || s == StatusFailed || s == StatusCancelled
}

// Open indica job ainda vivo (pending ou processing). No máximo um job
// aberto por agendamento, garantido na criação e não pela máquina de
// estados.
func Open(s Status) bool {
	return s == StatusPending || s == StatusProcessing
}
