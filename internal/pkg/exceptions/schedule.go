package exceptions

import (
	"fmt"

	"agenda-service/internal/pkg/constvars"
)

// Scheduling failure taxonomy. Each constructor pins the transport status so
// the boundary layer never has to inspect message text to pick one.
var (
	ErrScheduleInvalidDateFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDateFormat, constvars.ErrDevScheduleInvalidDate)
	}
	ErrScheduleInvalidTimeFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, constvars.ErrDevScheduleInvalidTime)
	}
	// ErrScheduleInvalidTimeRange surfaces the grid validation reason directly:
	// the window is syntactically valid but inverted, off-grid or out of hours.
	ErrScheduleInvalidTimeRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, err.Error(), constvars.ErrDevScheduleInvalidTimeRange)
	}
	ErrSlotNotFound = func(err error, slotID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientSlotNotFoundFormat, slotID), constvars.ErrDevScheduleSlotNotFound)
	}
	ErrSlotAlreadyBooked = func(err error, slotID, holder string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientSlotAlreadyBookedFormat, slotID, holder), constvars.ErrDevScheduleSlotContended)
	}
	ErrSlotNotBooked = func(err error, slotID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientSlotNotBookedFormat, slotID), constvars.ErrDevScheduleSlotContended)
	}
	ErrSlotCancelForbidden = func(err error, slotID, holder string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientSlotCancelForbiddenFormat, slotID, holder), constvars.ErrDevScheduleSlotContended)
	}
	// No open slot in the window is a conflict, not a malformed request.
	ErrScheduleNoAvailability = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientNoAvailability, constvars.ErrDevScheduleNoAvailability)
	}
)
