package responses

import "time"

type Slot struct {
	SlotID   string    `json:"slot_id"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Datetime time.Time `json:"datetime"`
	Status   string    `json:"status"`
	BookedBy *string   `json:"booked_by"`
	Version  int64     `json:"version"`
}

type WeekSchedule struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Slots     []Slot `json:"slots"`
}

type InitializeWeek struct {
	SlotsCreated int `json:"slots_created"`
}

type HealthCheck struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
	Redis  string `json:"redis"`
}
