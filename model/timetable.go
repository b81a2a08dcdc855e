package model

import "time"

type Slot struct {
	Subject   string `bson:"subject" json:"subject"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
	Location  string `bson:"location,omitempty" json:"location,omitempty"`
}

type DaySchedule struct {
	Day   string `bson:"day" json:"day"`
	Slots []Slot `bson:"slots" json:"slots"`
}

// Timetable holds one fixed Monday-Sunday week per user.
type Timetable struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Days      []DaySchedule `bson:"days" json:"days"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultDays returns the seven empty weekday entries a fresh timetable starts with.
func DefaultDays() []DaySchedule {
	days := make([]DaySchedule, len(Weekdays))
	for i, day := range Weekdays {
		days[i] = DaySchedule{Day: day, Slots: []Slot{}}
	}
	return days
}
