package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// As colunas de horário são timestamptz, então o range da constraint
// precisa ser tstzrange; tsrange não tem overload para timestamptz e o
// ALTER TABLE falharia com 42883.
func TestNoOverlapConstraintMatchesColumnTypes(t *testing.T) {
	assert.Contains(t, appointmentsNoOverlapDDL, "tstzrange(start_time, end_time)")
	assert.False(t, strings.Contains(appointmentsNoOverlapDDL, "tsrange(start_time"))

	// agendamentos cancelados e sem barbeiro ficam fora da constraint
	assert.Contains(t, appointmentsNoOverlapDDL, "barber_id WITH =")
	assert.Contains(t, appointmentsNoOverlapDDL, "status <> 'cancelled' AND barber_id IS NOT NULL")
}
