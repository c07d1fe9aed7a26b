package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-core/internal/httperr"
)

// --------------------------------------------------
// Parsing de parâmetros
// --------------------------------------------------

func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return 0, false
	}
	return uint(id), true
}

// --------------------------------------------------
// Tradução de erros de negócio para HTTP
// --------------------------------------------------

var businessMessages = map[string]string{
	"invalid_date":          "Data inválida.",
	"invalid_date_or_time":  "Data ou hora inválida.",
	"service_not_found":     "Serviço não encontrado.",
	"barber_not_found":      "Barbeiro não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"too_soon":              "Horário inválido.",
	"slot_unavailable":      "Horário indisponível.",
	"time_conflict":         "Conflito de horário.",
	"no_staff_available":    "Nenhum barbeiro disponível.",
	"invalid_state":         "Estado inválido para essa operação.",
}

func writeScheduleError(c *gin.Context, err error) {
	for code, msg := range businessMessages {
		if httperr.IsBusiness(err, code) {
			switch code {
			case "time_conflict", "slot_unavailable":
				httperr.Conflict(c, code, msg)
			case "appointment_not_found":
				httperr.NotFound(c, code, msg)
			default:
				httperr.BadRequest(c, code, msg)
			}
			return
		}
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
