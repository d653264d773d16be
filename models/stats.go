package models

import "time"

// DashboardStats is the store dashboard snapshot.
type DashboardStats struct {
	StoreID           string                    `json:"storeId"`
	ReferenceDate     string                    `json:"referenceDate"`
	TodayCount        int                       `json:"todayCount"`
	WeekRevenue       float64                   `json:"weekRevenue"`
	MonthRevenue      float64                   `json:"monthRevenue"`
	CompletionRate    float64                   `json:"completionRate"`
	UniqueCustomers   int                       `json:"uniqueCustomers"`
	TotalAppointments int                       `json:"totalAppointments"`
	ByStatus          map[AppointmentStatus]int `json:"byStatus"`
	ComputedAt        time.Time                 `json:"computedAt"`
}
