package attendance

import "strings"

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

// ListQuery carries the optional filters from the query string, raw.
type ListQuery struct {
	EmployeeID string
	Date       string
}

type EmployeeDetails struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AttendanceResponse struct {
	ID              string           `json:"id"`
	Employee        string           `json:"employee"`
	EmployeeDetails *EmployeeDetails `json:"employee_details"`
	Date            string           `json:"date"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type SummaryEmployee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

type Summary struct {
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type SummaryResponse struct {
	Employee SummaryEmployee `json:"employee"`
	Summary  Summary         `json:"summary"`
}
