package setup

import (
	"math/rand"
	"time"

	"github.com/saurav-commits/HRMS-Lite/internal/attendance"
	"github.com/saurav-commits/HRMS-Lite/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed wipes both tables and inserts sample data. Dev only.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	if err := db.Where("1 = 1").Delete(&attendance.Attendance{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&employee.Employee{}).Error; err != nil {
		return err
	}

	now := time.Now().UTC()

	employees := []employee.Employee{
		{ID: uuid.New(), EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), EmployeeID: "EMP002", FullName: "Jane Smith", Email: "jane.smith@company.com", Department: "HR", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), EmployeeID: "EMP003", FullName: "Mike Johnson", Email: "mike.johnson@company.com", Department: "Marketing", CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}
	logger.Info("seeded employees", zap.Int("count", len(employees)))

	today := now.Truncate(24 * time.Hour)

	var rows []attendance.Attendance
	for i := 0; i < 5; i++ {
		for _, empl := range employees {
			status := attendance.StatusPresent
			if rand.Float64() <= 0.2 {
				status = attendance.StatusAbsent
			}
			rows = append(rows, attendance.Attendance{
				ID:         uuid.New(),
				EmployeeID: empl.ID,
				Date:       today.AddDate(0, 0, -i),
				Status:     status,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	logger.Info("seeded attendance records", zap.Int("count", len(rows)))

	return nil
}
