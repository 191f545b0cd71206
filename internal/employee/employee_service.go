package employee

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	employeeerrors "github.com/saurav-commits/HRMS-Lite/internal/employee/errors"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Normalize()

	if err := validateCreate(req); err != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	now := time.Now().UTC()
	empl := &Employee{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("id", empl.ID.String()),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		// A malformed id can never match a row; treat it as absent rather
		// than letting the uuid cast fail inside the store.
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee by id failed", zap.String("id", id), zap.Error(err))
		}
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	// Existence check first so a missing id is a 404, not a silent no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed",
			zap.String("request_id", rid),
			zap.String("id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	// Attendance rows referencing this employee are left in place; the read
	// paths tolerate the orphaned reference.
	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("id", id),
	)
	return nil
}

func validateCreate(req CreateEmployeeRequest) error {
	fields := map[string]string{}
	if req.EmployeeID == "" {
		fields["employee_id"] = "Employee ID is required"
	}
	if req.FullName == "" {
		fields["full_name"] = "Full name is required"
	}
	if req.Email == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) {
		fields["email"] = employeeerrors.ErrInvalidEmail.Message
	}
	if req.Department == "" {
		fields["department"] = "Department is required"
	}
	if len(fields) > 0 {
		return apperror.New(
			apperror.CodeInvalidInput,
			"Validation failed",
			http.StatusBadRequest,
		).WithDetails(fields)
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID.String(),
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Department: empl.Department,
		CreatedAt:  empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
