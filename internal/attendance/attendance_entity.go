package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index:idx_attendance_date"`
	Status     string    `gorm:"column:status;type:varchar(10);not null;index:idx_attendance_status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	// Read-time join only; rows survive employee deletion, so the store has
	// no FK constraint and Employee is nil for orphaned rows.
	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20)"`
	FullName   string    `gorm:"column:full_name;type:varchar(100)"`
	Email      string    `gorm:"column:email;type:varchar(255)"`
	Department string    `gorm:"column:department;type:varchar(50)"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
