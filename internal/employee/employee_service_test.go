package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saurav-commits/HRMS-Lite/internal/employee"
	employeeerrors "github.com/saurav-commits/HRMS-Lite/internal/employee/errors"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn           func(ctx context.Context, empl *employee.Employee) error
	findAllFn          func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn         func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmployeeIDFn func(ctx context.Context, employeeID string) (*employee.Employee, error)
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.createFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return f.findByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - trims fields and lower-cases email", func(t *testing.T) {
		var saved employee.Employee
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				saved = *empl
				return nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "  EMP001  ",
			FullName:   " John Doe ",
			Email:      "  John.Doe@Company.COM ",
			Department: " Engineering ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", saved.EmployeeID)
		assert.Equal(t, "John Doe", saved.FullName)
		assert.Equal(t, "john.doe@company.com", saved.Email)
		assert.Equal(t, "Engineering", saved.Department)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

		assert.Equal(t, saved.ID.String(), resp.ID)
		assert.Equal(t, "john.doe@company.com", resp.Email)
	})

	t.Run("whitespace-only fields fail validation with field details", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				t.Fatal("create must not be called on invalid input")
				return nil
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "   ",
			FullName:   " ",
			Email:      "  ",
			Department: " ",
		})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		fields, ok := appErr.Details.(map[string]string)
		assert.True(t, ok)
		assert.Contains(t, fields, "employee_id")
		assert.Contains(t, fields, "full_name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "department")
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				t.Fatal("create must not be called on invalid input")
				return nil
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP002",
			FullName:   "Jane Smith",
			Email:      "not-an-email",
			Department: "HR",
		})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		fields := appErr.Details.(map[string]string)
		assert.Equal(t, "Invalid email format", fields["email"])
	})

	t.Run("duplicate employee_id maps unique violation to conflict", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				return &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "uq_employees_employee_id",
				}
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP001",
			FullName:   "John Doe",
			Email:      "john.doe@company.com",
			Department: "Engineering",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeIDExists)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
	})

	t.Run("unrelated store failure surfaces as a generic internal error", func(t *testing.T) {
		underlying := errors.New("write tcp 10.0.0.3:5432: connection reset by peer")
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				return underlying
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP001",
			FullName:   "John Doe",
			Email:      "john.doe@company.com",
			Department: "Engineering",
		})

		assert.ErrorIs(t, err, underlying)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 500, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "10.0.0.3")
	})

	t.Run("duplicate detected from wrapped driver message", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, empl *employee.Employee) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "uq_employees_employee_id" (SQLSTATE 23505)`)
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP001",
			FullName:   "John Doe",
			Email:      "john.doe@company.com",
			Department: "Engineering",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeIDExists)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: uuid.New(), EmployeeID: "EMP002", FullName: "Jane Smith", Email: "jane@company.com", Department: "HR", CreatedAt: now, UpdatedAt: now},
				{ID: uuid.New(), EmployeeID: "EMP001", FullName: "John Doe", Email: "john@company.com", Department: "Engineering", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := employee.NewService(repo)

	resp, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "EMP002", resp[0].EmployeeID)
	assert.Equal(t, "EMP001", resp[1].EmployeeID)
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id behaves as not found", func(t *testing.T) {
		svc := employee.NewService(&fakeRepo{})
		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)
		_, err := svc.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
				assert.Equal(t, id.String(), got)
				return &employee.Employee{
					ID:         id,
					EmployeeID: "EMP001",
					FullName:   "John Doe",
					Email:      "john.doe@company.com",
					Department: "Engineering",
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.EmployeeID)
		assert.Equal(t, "John Doe", resp.FullName)
		assert.Equal(t, "john.doe@company.com", resp.Email)
		assert.Equal(t, "Engineering", resp.Department)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			deleteFn: func(ctx context.Context, id string) error {
				t.Fatal("delete must not run for a missing employee")
				return nil
			},
		}
		svc := employee.NewService(repo)
		err := svc.Delete(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		deleted := false
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, got string) (*employee.Employee, error) {
				return &employee.Employee{ID: id, EmployeeID: "EMP001"}, nil
			},
			deleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id.String(), got)
				deleted = true
				return nil
			},
		}
		svc := employee.NewService(repo)
		assert.NoError(t, svc.Delete(ctx, id.String()))
		assert.True(t, deleted)
	})
}
