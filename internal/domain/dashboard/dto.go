package dashboard

import "github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"

// LeaveRange is the slice of a leave the working-day aggregation needs.
// From <= To is assumed, not enforced.
type LeaveRange struct {
	UserID int64
	From   calendar.Date
	To     calendar.Date
}

// UserDaySummary holds working-day counts of one user for one year.
// DaysTotal is always DaysPast + DaysFuture.
type UserDaySummary struct {
	UserID     int64 `json:"user_id"`
	DaysPast   int   `json:"days_past"`
	DaysFuture int   `json:"days_future"`
	DaysTotal  int   `json:"days_total"`
}

// DashboardRow is a summary row joined with the user's name.
type DashboardRow struct {
	UserDaySummary
	Name string `json:"name"`
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// DashboardResponse is the per-year working-day summary for all users.
type DashboardResponse struct {
	Year           int               `json:"year"`
	AvailableYears []int             `json:"available_years"`
	Today          string            `json:"today"`
	Rows           []DashboardRow    `json:"rows"`
	Total          UserDaySummary    `json:"total"`
	Holidays       []HolidayResponse `json:"holidays"`
}
