package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-core/internal/audit"
	"github.com/BruksfildServices01/agenda-core/internal/cache"
	"github.com/BruksfildServices01/agenda-core/internal/clock"
	"github.com/BruksfildServices01/agenda-core/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-core/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-core/internal/middleware"
	ucReminder "github.com/BruksfildServices01/agenda-core/internal/usecase/reminder"
	ucSchedule "github.com/BruksfildServices01/agenda-core/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache, clk clock.Clock) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: REMINDERS
	// ======================================================
	scheduleReminderUC := ucReminder.NewScheduleReminder(reminderRepo, clk)
	cancelRemindersUC := ucReminder.NewCancelReminders(reminderRepo)

	// ======================================================
	// USE CASES: SCHEDULING
	// ======================================================
	availabilityUC := ucSchedule.NewGetAvailableSlots(scheduleRepo, c, clk)
	assignStaffUC := ucSchedule.NewAssignStaff(scheduleRepo)

	bookUC := ucSchedule.NewBookAppointment(
		scheduleRepo,
		availabilityUC,
		assignStaffUC,
		scheduleReminderUC,
		auditDispatcher,
		c,
		clk,
	)

	cancelUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		cancelRemindersUC,
		auditDispatcher,
		c,
		clk,
	)

	confirmUC := ucSchedule.NewConfirmAppointment(
		scheduleRepo,
		auditDispatcher,
		clk,
	)

	rescheduleUC := ucSchedule.NewRescheduleAppointment(
		scheduleRepo,
		availabilityUC,
		scheduleReminderUC,
		cancelRemindersUC,
		auditDispatcher,
		c,
		clk,
	)

	listByDateUC := ucSchedule.NewListAppointmentsByDate(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilityUC,
		assignStaffUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		confirmUC,
		rescheduleUC,
		listByDateUC,
	)

	reminderHandler := handlers.NewReminderHandler(
		scheduleReminderUC,
		cancelRemindersUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		shops := api.Group("/shops/:shopId")
		{
			shops.GET("/availability", availabilityHandler.GetSlots)
			shops.GET("/assign-staff", availabilityHandler.AssignStaff)

			shops.POST("/appointments", appointmentHandler.Create)
			shops.GET("/appointments", appointmentHandler.ListByDate)
			shops.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			shops.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			shops.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		}

		api.POST("/appointments/:id/reminders", reminderHandler.Schedule)
		api.DELETE("/appointments/:id/reminders", reminderHandler.Cancel)
	}
}
