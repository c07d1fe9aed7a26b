package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-core/internal/httperr"
	"github.com/BruksfildServices01/agenda-core/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/agenda-core/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucSchedule.BookAppointment
	cancel     *ucSchedule.CancelAppointment
	confirm    *ucSchedule.ConfirmAppointment
	reschedule *ucSchedule.RescheduleAppointment
	listByDate *ucSchedule.ListAppointmentsByDate
}

func NewAppointmentHandler(
	book *ucSchedule.BookAppointment,
	cancel *ucSchedule.CancelAppointment,
	confirm *ucSchedule.ConfirmAppointment,
	reschedule *ucSchedule.RescheduleAppointment,
	listByDate *ucSchedule.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		cancel:     cancel,
		confirm:    confirm,
		reschedule: reschedule,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    *uint  `json:"barber_id"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/shops/:shopId/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucSchedule.BookAppointmentInput{
		BarbershopID: shopID,
		ServiceID:    req.ServiceID,
		BarberID:     req.BarberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

// PATCH /api/shops/:shopId/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), shopID, apID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// PATCH /api/shops/:shopId/appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), shopID, apID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// PATCH /api/shops/:shopId/appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucSchedule.RescheduleAppointmentInput{
		BarbershopID:  shopID,
		AppointmentID: apID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

// GET /api/shops/:shopId/appointments?date=2006-01-02
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	shopID, ok := paramUint(c, "shopId")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, items)
}
