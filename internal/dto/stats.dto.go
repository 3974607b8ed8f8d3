package dto

// StatsDTO is the dashboard counter block shown on the statistics tab.
type StatsDTO struct {
	TotalCustomers    int64 `json:"total_customers"`
	TotalEmployees    int64 `json:"total_employees"`
	ActiveServices    int64 `json:"active_services"`
	AppointmentsToday int64 `json:"appointments_today"`

	ScheduledToday int64 `json:"scheduled_today"`
	CompletedToday int64 `json:"completed_today"`
	CancelledToday int64 `json:"cancelled_today"`
	NoShowToday    int64 `json:"no_show_today"`

	RevenueToday int64 `json:"revenue_today"`
}
