package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App      App
	Schedule Schedule
}

type App struct {
	Env                     string
	Port                    string
	Version                 string
	Timezone                string
	EndpointPrefix          string
	MaxRequests             int
	ShutdownTimeout         int
	RequestTimeoutInSeconds int
}

// Schedule defines the bookable grid. It is passed into the calendar helpers
// and the booking engine at construction time so alternate grids stay testable.
type Schedule struct {
	StartHour           int
	EndHour             int
	SlotIntervalMinutes int
	WorkerEnabled       bool
	WorkerCronSpec      string
}
