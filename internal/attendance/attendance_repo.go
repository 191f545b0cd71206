package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter holds the already-resolved filters applied by FindAll.
type ListFilter struct {
	EmployeeID *uuid.UUID
	Date       *time.Time
}

type StatusCounts struct {
	Total   int64
	Present int64
	Absent  int64
}

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error)
	CountByStatus(ctx context.Context, employeeID uuid.UUID) (StatusCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", filter.Date.Format("2006-01-02"))
	}

	var rows []Attendance
	err := q.Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) CountByStatus(ctx context.Context, employeeID uuid.UUID) (StatusCounts, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("status, count(*) as count").
		Where("employee_id = ?", employeeID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, err
	}

	var counts StatusCounts
	for _, r := range rows {
		counts.Total += r.Count
		switch r.Status {
		case StatusPresent:
			counts.Present = r.Count
		case StatusAbsent:
			counts.Absent = r.Count
		}
	}
	return counts, nil
}
