package requests

type BookAppointment struct {
	SlotID string `json:"slot_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=1"`
}

type BookAppointmentInRange struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Name      string `json:"name" validate:"required,min=1"`
}

type CancelAppointment struct {
	SlotID string `json:"slot_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=1"`
}
