package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/agenda-core/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	availability *ucSchedule.GetAvailableSlots
	assignStaff  *ucSchedule.AssignStaff
}

func NewAvailabilityHandler(
	availability *ucSchedule.GetAvailableSlots,
	assignStaff *ucSchedule.AssignStaff,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		assignStaff:  assignStaff,
	}
}

// GET /api/shops/:shopId/availability?service_id=&date=&barber_id=
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}

	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var barberID *uint
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
			return
		}
		v := uint(id)
		barberID = &v
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucSchedule.AvailabilityInput{
		BarbershopID: shopID,
		ServiceID:    serviceID,
		BarberID:     barberID,
		Date:         date,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// GET /api/shops/:shopId/assign-staff?service_id=&date=&time=
func (h *AvailabilityHandler) AssignStaff(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}

	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}

	date := c.Query("date")
	timeStr := c.Query("time")
	if date == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Data e hora obrigatórias.")
		return
	}

	barberID, found, err := h.assignStaff.Execute(c.Request.Context(), ucSchedule.AssignStaffInput{
		BarbershopID: shopID,
		ServiceID:    serviceID,
		Date:         date,
		Time:         timeStr,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	if !found {
		// nenhum barbeiro livre: resposta normal, não erro
		httpresp.OK(c, gin.H{"barber_id": nil})
		return
	}

	httpresp.OK(c, gin.H{"barber_id": barberID})
}
