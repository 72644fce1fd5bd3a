package schedules

import (
	"fmt"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/pkg/constvars"
)

// clockTime holds a local wall time (hour and minute).
type clockTime struct {
	Hour   int
	Minute int
}

func (c clockTime) totalMinutes() int {
	return c.Hour*60 + c.Minute
}

func (c clockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Grid describes the bookable slot grid for a single day: every time from
// StartHour:00 up to and including EndHour:00, stepped by IntervalMinutes.
// All calendar math in the scheduling core goes through a Grid value so
// alternate grids can be exercised in tests.
type Grid struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

func NewGrid(cfg config.Schedule) Grid {
	return Grid{
		StartHour:       cfg.StartHour,
		EndHour:         cfg.EndHour,
		IntervalMinutes: cfg.SlotIntervalMinutes,
	}
}

// DayTimes returns the ordered slot times of one day. The EndHour:00 boundary
// is included.
func (g Grid) DayTimes() []clockTime {
	var times []clockTime
	current := clockTime{Hour: g.StartHour}
	end := clockTime{Hour: g.EndHour}
	for current.totalMinutes() <= end.totalMinutes() {
		times = append(times, current)
		minutes := current.totalMinutes() + g.IntervalMinutes
		current = clockTime{Hour: minutes / 60, Minute: minutes % 60}
	}
	return times
}

// WeekStart returns the Monday at midnight of the week containing t.
func (g Grid) WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	daysSinceMonday := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -daysSinceMonday)
}

// WeekEnd returns the Sunday of the week starting at weekStart.
func (g Grid) WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// ValidateWindow checks a syntactically valid [start, end] window against the
// grid: ordered, inside working hours, aligned to the slot interval. The
// returned error text is client-ready.
func (g Grid) ValidateWindow(start, end clockTime) error {
	if start.totalMinutes() >= end.totalMinutes() {
		return fmt.Errorf("start_time must be earlier than end_time")
	}
	if start.totalMinutes() < g.StartHour*60 || end.totalMinutes() > g.EndHour*60 {
		return fmt.Errorf("start_time and end_time must be within %02d:00-%02d:00", g.StartHour, g.EndHour)
	}
	if start.Minute%g.IntervalMinutes != 0 || end.Minute%g.IntervalMinutes != 0 {
		return fmt.Errorf("start_time and end_time must align to the %d-minute slot interval", g.IntervalMinutes)
	}
	return nil
}

// SlotID derives the slot's primary key from its datetime.
func SlotID(dt time.Time) string {
	return dt.Format(constvars.SlotIDLayout)
}

// ParseDate parses a strict YYYY-MM-DD string into a midnight instant in the
// server's location.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, s, time.Local)
}

// ParseTime parses a strict HH:MM (24-hour) string.
func ParseTime(s string) (clockTime, error) {
	parsed, err := time.Parse(constvars.TimeLayout, s)
	if err != nil {
		return clockTime{}, err
	}
	return clockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}
