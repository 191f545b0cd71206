package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	attendanceerrors "github.com/saurav-commits/HRMS-Lite/internal/attendance/errors"
	"github.com/saurav-commits/HRMS-Lite/internal/employee"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryKeyPrefix = "attendance:summary:"

const summaryCacheTTL = 10 * time.Minute

// GetSummaryKey returns the cache key for an employee's summary, keyed by
// the internal id so renames of the external id never leave stale entries.
func GetSummaryKey(employeeID string) string {
	return summaryKeyPrefix + employeeID
}

type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, q ListQuery) ([]AttendanceResponse, error)
	Summary(ctx context.Context, employeeID string) (SummaryResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

// NewService wires the attendance repository together with the employee
// repository used to resolve external employee ids. rdb may be nil, which
// disables summary caching.
func NewService(repo Repository, employees employee.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Normalize()

	if req.Status != StatusPresent && req.Status != StatusAbsent {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	empl, err := s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrUnknownEmployee
		}
		s.logger.Error("mark attendance employee lookup failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	// Advisory pre-check; the compound unique index remains the real guard
	// against two concurrent marks for the same day.
	if _, err := s.repo.FindByEmployeeAndDate(ctx, empl.ID, date); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("mark attendance duplicate check failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		Date:       date,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("mark attendance persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		cacheKey := GetSummaryKey(empl.ID.String())
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate summary cache",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	row.Employee = &EmployeeRef{
		ID:         empl.ID,
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Department: empl.Department,
	}
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]AttendanceResponse, error) {
	var filter ListFilter

	if q.EmployeeID != "" {
		empl, err := s.employees.FindByEmployeeID(ctx, q.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, attendanceerrors.ErrEmployeeNotFound
			}
			s.logger.Error("list attendance employee lookup failed",
				zap.String("employee_id", q.EmployeeID),
				zap.Error(err),
			)
			return nil, err
		}
		filter.EmployeeID = &empl.ID
	}

	if q.Date != "" {
		date, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
		filter.Date = &date
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Summary(ctx context.Context, employeeID string) (SummaryResponse, error) {
	empl, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		s.logger.Error("summary employee lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SummaryResponse{}, err
	}

	cacheKey := GetSummaryKey(empl.ID.String())

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent summary reads for the same employee into one
	// aggregation query.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		counts, err := s.repo.CountByStatus(ctx, empl.ID)
		if err != nil {
			s.logger.Error("summary aggregation failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return SummaryResponse{}, err
		}

		resp := SummaryResponse{
			Employee: SummaryEmployee{
				ID:         empl.ID.String(),
				EmployeeID: empl.EmployeeID,
				FullName:   empl.FullName,
				Department: empl.Department,
			},
			Summary: Summary{
				TotalDays:            counts.Total,
				PresentDays:          counts.Present,
				AbsentDays:           counts.Absent,
				AttendancePercentage: percentage(counts.Present, counts.Total),
			},
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}

// percentage rounds to two decimals and guards the zero-record case, which
// is a valid summary rather than an error.
func percentage(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.ID.String(),
		Employee:  a.EmployeeID.String(),
		Date:      a.Date.Format("2006-01-02"),
		Status:    a.Status,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if a.Employee != nil {
		resp.EmployeeDetails = &EmployeeDetails{
			ID:         a.Employee.ID.String(),
			EmployeeID: a.Employee.EmployeeID,
			FullName:   a.Employee.FullName,
			Email:      a.Employee.Email,
			Department: a.Employee.Department,
		}
	}
	return resp
}
