package constvars

const (
	GetWeekScheduleSuccessMessage = "Successfully retrieved week schedule"
	GetSlotSuccessMessage         = "Successfully retrieved slot"
	BookSlotSuccessMessage        = "Successfully booked appointment"
	CancelSlotSuccessMessage      = "Successfully cancelled appointment"
	InitializeWeekSuccessMessage  = "Successfully initialized week slots"
	HealthCheckSuccessMessage     = "Service is healthy"
)
