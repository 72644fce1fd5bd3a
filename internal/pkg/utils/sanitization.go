package utils

import (
	"strings"

	"agenda-service/internal/pkg/dto/requests"
)

func SanitizeBookAppointmentRequest(request *requests.BookAppointment) {
	request.SlotID = strings.TrimSpace(request.SlotID)
	request.Name = strings.TrimSpace(request.Name)
}

func SanitizeBookAppointmentInRangeRequest(request *requests.BookAppointmentInRange) {
	request.Date = strings.TrimSpace(request.Date)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
	request.Name = strings.TrimSpace(request.Name)
}

func SanitizeCancelAppointmentRequest(request *requests.CancelAppointment) {
	request.SlotID = strings.TrimSpace(request.SlotID)
	request.Name = strings.TrimSpace(request.Name)
}
