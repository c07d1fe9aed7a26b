package clock

import (
	"time"

	"github.com/BruksfildServices01/agenda-core/internal/timezone"
)

// Clock abstrai o "agora" para que disponibilidade e lembretes sejam
// determinísticos em teste. Nada no core lê time.Now() diretamente.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now().In(timezone.Location(timezone.DefaultTimezone))
}

// NowIn devolve o agora no fuso da barbearia.
func NowIn(c Clock, tz string) time.Time {
	return c.Now().In(timezone.Location(tz))
}
