package models

import "time"

// DaysPerWeek is the number of weekday entries; index 0 is Sunday.
const DaysPerWeek = 7

// WeeklySchedule holds a store's bookable times for every weekday.
type WeeklySchedule struct {
	StoreID   string                `bson:"storeId" json:"storeId"`
	Weekdays  [DaysPerWeek][]string `bson:"weekdays" json:"weekdays"` // "15:04" values, sorted
	Version   int                   `bson:"version" json:"version"`
	CreatedAt time.Time             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time             `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SlotsFor returns a copy of the slots configured for weekday; out of range yields nil.
func (w *WeeklySchedule) SlotsFor(weekday int) []string {
	if w == nil || weekday < 0 || weekday >= DaysPerWeek {
		return nil
	}
	return append([]string(nil), w.Weekdays[weekday]...)
}

// AddSlotRequest adds one time to a weekday.
type AddSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

// ReplaceSlotRequest moves a weekday slot to a new time.
type ReplaceSlotRequest struct {
	NewTime string `json:"newTime" binding:"required"`
}

// BulkRangeRequest regenerates whole weekdays from a range.
type BulkRangeRequest struct {
	Weekdays    []int  `json:"weekdays" binding:"required,min=1"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	StepMinutes int    `json:"stepMinutes"`
}

// SlotStatus is one configured slot on a date with its booking state.
type SlotStatus struct {
	Time        string       `json:"time"`
	Booked      bool         `json:"booked"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

// DayAvailability groups the slot list of one calendar date.
type DayAvailability struct {
	Date    string       `json:"date"`
	Weekday int          `json:"weekday"`
	Slots   []SlotStatus `json:"slots"`
}

// SetWeekRequest replaces a store's whole weekly schedule.
type SetWeekRequest struct {
	Weekdays [DaysPerWeek][]string `json:"weekdays"`
}
