package setup

import (
	"github.com/saurav-commits/HRMS-Lite/internal/attendance"
	"github.com/saurav-commits/HRMS-Lite/internal/employee"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// migrator is the slice of gorm.Migrator the bootstrap needs, narrowed so
// tests can fake the schema state.
type migrator interface {
	AutoMigrate(dst ...any) error
	HasIndex(dst any, name string) bool
	CreateIndex(dst any, name string) error
}

var indexChecks = []struct {
	model any
	index string
}{
	{&employee.Employee{}, "uq_employees_employee_id"},
	{&employee.Employee{}, "idx_employees_email"},
	{&attendance.Attendance{}, "uq_attendance_employee_date"},
	{&attendance.Attendance{}, "idx_attendance_date"},
	{&attendance.Attendance{}, "idx_attendance_status"},
}

// EnsureSchema creates the two tables and their indexes. AutoMigrate only
// adds what is missing, so re-running it never errors and never touches data.
func EnsureSchema(db *gorm.DB, logger *zap.Logger) error {
	return ensureSchema(db.Migrator(), logger)
}

func ensureSchema(m migrator, logger *zap.Logger) error {
	if err := m.AutoMigrate(&employee.Employee{}, &attendance.Attendance{}); err != nil {
		return err
	}

	for _, c := range indexChecks {
		if m.HasIndex(c.model, c.index) {
			logger.Info("index ensured", zap.String("index", c.index))
			continue
		}
		logger.Info("creating index", zap.String("index", c.index))
		if err := m.CreateIndex(c.model, c.index); err != nil {
			return err
		}
	}

	return nil
}
