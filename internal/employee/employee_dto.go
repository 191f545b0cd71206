package employee

import "strings"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=20"`
	FullName   string `json:"full_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required,max=50"`
}

// Normalize trims every field and lower-cases the email. Runs before any
// field validation so whitespace-only input is treated as missing.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
