package constvars

// Client-facing messages. The booking ones carry enough context (slot id,
// holder name) to render a precise reason without exposing internals.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"

	ErrClientInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	ErrClientInvalidTimeFormat = "Invalid time format. Use HH:MM (24h)"

	ErrClientSlotNotFoundFormat        = "Slot %s does not exist"
	ErrClientSlotAlreadyBookedFormat   = "Slot %s is already booked by %s"
	ErrClientSlotNotBookedFormat       = "Slot %s is not booked"
	ErrClientSlotCancelForbiddenFormat = "Slot %s is booked by someone else. Only %s can cancel it"
	ErrClientNoAvailability            = "No availability in the requested time range"
)

// Developer-facing messages logged alongside the client message.
const (
	ErrDevValidationFailed = "Request validation failed"
	ErrDevCannotParseJSON  = "Failed to parse JSON request body"
	ErrDevInvalidInput     = "Invalid input"

	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing the request"

	ErrDevScheduleInvalidDate      = "Schedule date string does not match YYYY-MM-DD"
	ErrDevScheduleInvalidTime      = "Schedule time string does not match HH:MM"
	ErrDevScheduleInvalidTimeRange = "Schedule time range rejected by grid validation"
	ErrDevScheduleSlotNotFound     = "Slot id not present in the appointments collection"
	ErrDevScheduleSlotContended    = "Conditional update matched no document; slot is not in the expected state"
	ErrDevScheduleNoAvailability   = "No available slot matched the requested range"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToCountDocuments   = "MongoDB failed to count documents"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBFailedToCreateIndexes    = "MongoDB failed to create indexes"

	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
	ErrDevRedisSetNX      = "Redis failed to execute SETNX"
	ErrDevRedisUnlock     = "Redis failed to release advisory lock"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "must be at most %s characters long",
}
