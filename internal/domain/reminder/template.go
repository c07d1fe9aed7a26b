package reminder

import (
	"strings"
	"time"
)

const DefaultTemplate = "Olá {nome}! Lembrete do seu horário de {servico} no dia {data} às {hora}. Até logo!"

type MessageData struct {
	ClientName  string
	ServiceName string

	// Início do atendimento, já no fuso da barbearia
	Start time.Time
}

// RenderMessage substitui os placeholders reconhecidos no template.
// Cada substituição é independente; placeholder desconhecido fica como
// está.
func RenderMessage(template string, data MessageData) string {
	r := strings.NewReplacer(
		"{nome}", data.ClientName,
		"{data}", data.Start.Format("02/01/2006"),
		"{hora}", data.Start.Format("15:04"),
		"{servico}", data.ServiceName,
	)
	return r.Replace(template)
}
