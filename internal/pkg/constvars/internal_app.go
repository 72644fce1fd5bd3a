package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
)

const (
	MongoCollectionAppointments = "appointments"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
	// SlotIDLayout renders a slot's datetime into its primary key,
	// e.g. 2024-01-15-09-00.
	SlotIDLayout = "2006-01-02-15-04"
)

const (
	RedisKeyWeekInitLockFormat = "schedule:init:%s"
	RedisKeyWorkerLeaderLock   = "schedule:worker:leader"
)
