package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking sources.
const (
	SourceOwner  = "owner"
	SourcePublic = "public"
)

// Appointment is a booked visit. Service fields are copied at creation time so later
// catalogue edits never rewrite history.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	StoreID         string            `bson:"storeId" json:"storeId"`
	CustomerName    string            `bson:"customerName" json:"customerName"`
	CustomerPhone   string            `bson:"customerPhone" json:"customerPhone"`
	ServiceID       string            `bson:"serviceId" json:"serviceId"`
	ServiceName     string            `bson:"serviceName" json:"serviceName"`
	ServiceDuration int               `bson:"serviceDuration" json:"serviceDuration"` // minutes
	ServicePrice    float64           `bson:"servicePrice" json:"servicePrice"`
	Currency        string            `bson:"currency,omitempty" json:"currency,omitempty"`
	Date            string            `bson:"date" json:"date"` // "2006-01-02"
	Time            string            `bson:"time" json:"time"` // "15:04"
	Status          AppointmentStatus `bson:"status" json:"status"`
	Source          string            `bson:"source,omitempty" json:"source,omitempty"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Active          bool              `bson:"active" json:"-"` // false once cancelled; drives the unique slot index
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentInput is what a caller supplies to create an appointment.
type AppointmentInput struct {
	StoreID       string `json:"-"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
	Source        string `json:"-"`
}

// StatusUpdateRequest is the payload for PATCH .../status.
type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
