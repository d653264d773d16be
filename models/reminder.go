package models

// ReminderPayload is the asynq payload of an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	StoreID       string `json:"storeId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
