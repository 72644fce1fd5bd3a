package models

import "time"

// Slot is the single bookable unit on the weekly grid. Its id doubles as the
// Mongo primary key and is derived from the slot's datetime, so a {date,time}
// pair can never map to two documents.
type Slot struct {
	ID        string    `bson:"_id" json:"slot_id"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Datetime  time.Time `bson:"datetime" json:"datetime"`
	Status    string    `bson:"status" json:"status"`
	BookedBy  *string   `bson:"booked_by" json:"booked_by"`
	Version   int64     `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
