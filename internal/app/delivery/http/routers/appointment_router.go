package routers

import (
	"agenda-service/internal/app/services/core/schedules"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, scheduleController *schedules.ScheduleController) {
	router.Get("/week", scheduleController.GetWeekSchedule)
	router.Get("/slot/{slotID}", scheduleController.GetSlot)
	router.Post("/book", scheduleController.BookSlot)
	router.Post("/book-range", scheduleController.BookSlotInRange)
	router.Post("/cancel", scheduleController.CancelSlot)
	router.Post("/initialize", scheduleController.InitializeWeek)
}
