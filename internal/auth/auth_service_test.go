package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-ponto/internal/auth"
	autherrors "go-ponto/internal/auth/errors"
	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var testEmployeeID = uuid.MustParse("6f1c0d0e-9f1b-4a7e-9c1d-2b3a4c5d6e7f")

type fakeEmployeeRepository struct {
	FindByIDFn  func(ctx context.Context, id string) (*employee.Employee, error)
	FindByCPFFn func(ctx context.Context, cpf string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEmployeeRepository) FindByCPF(ctx context.Context, cpf string) (*employee.Employee, error) {
	return f.FindByCPFFn(ctx, cpf)
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error            { return nil }

func activeEmployee(t *testing.T, password string) *employee.Employee {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	return &employee.Employee{
		ID:           testEmployeeID,
		Name:         "Maria Souza",
		CPF:          "52998224725",
		Role:         employee.RoleEmployee,
		PasswordHash: string(hash),
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	emp := activeEmployee(t, "s3nh4-forte")
	repo := &fakeEmployeeRepository{
		FindByCPFFn: func(ctx context.Context, cpf string) (*employee.Employee, error) {
			assert.Equal(t, "52998224725", cpf)
			return emp, nil
		},
	}

	svc := auth.NewService(repo)

	accessToken, refreshToken, resp, err := svc.Login(context.Background(), "529.982.247-25", "s3nh4-forte")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, testEmployeeID.String(), resp.Employee.ID)

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, testEmployeeID.String(), claims["employee_id"])
	assert.Equal(t, employee.RoleEmployee, claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	emp := activeEmployee(t, "s3nh4-forte")
	repo := &fakeEmployeeRepository{
		FindByCPFFn: func(ctx context.Context, cpf string) (*employee.Employee, error) {
			return emp, nil
		},
	}

	svc := auth.NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "52998224725", "errada")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_MalformedCPF(t *testing.T) {
	repo := &fakeEmployeeRepository{
		FindByCPFFn: func(ctx context.Context, cpf string) (*employee.Employee, error) {
			t.Fatal("repository should not be queried for a malformed CPF")
			return nil, nil
		},
	}

	svc := auth.NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "not-a-cpf", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_InactiveEmployee(t *testing.T) {
	emp := activeEmployee(t, "s3nh4-forte")
	emp.Active = false

	repo := &fakeEmployeeRepository{
		FindByCPFFn: func(ctx context.Context, cpf string) (*employee.Employee, error) {
			return emp, nil
		},
	}

	svc := auth.NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "52998224725", "s3nh4-forte")
	assert.ErrorIs(t, err, autherrors.ErrInactiveEmployee)
}

func TestRefreshToken_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	emp := activeEmployee(t, "s3nh4-forte")
	repo := &fakeEmployeeRepository{
		FindByCPFFn: func(ctx context.Context, cpf string) (*employee.Employee, error) {
			return emp, nil
		},
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, testEmployeeID.String(), id)
			return emp, nil
		},
	}

	svc := auth.NewService(repo)

	_, refreshToken, _, err := svc.Login(context.Background(), "52998224725", "s3nh4-forte")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, testEmployeeID.String(), resp.Employee.ID)
}

func TestRefreshToken_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"employee_id": testEmployeeID.String(),
		"role":        employee.RoleEmployee,
		"exp":         time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	svc := auth.NewService(&fakeEmployeeRepository{})

	_, _, _, err = svc.RefreshToken(context.Background(), expired)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestGetMe_Success(t *testing.T) {
	emp := activeEmployee(t, "s3nh4-forte")
	repo := &fakeEmployeeRepository{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return emp, nil
		},
	}

	svc := auth.NewService(repo)

	resp, err := svc.GetMe(context.Background(), testEmployeeID.String())
	assert.NoError(t, err)
	assert.Equal(t, "Maria Souza", resp.Name)
}

func TestGetMe_DeletedEmployee(t *testing.T) {
	// A token can outlive its employee; a missing row is not-found, not a
	// panic.
	repo := &fakeEmployeeRepository{
		FindByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, nil
		},
	}

	svc := auth.NewService(repo)

	resp, err := svc.GetMe(context.Background(), testEmployeeID.String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.Nil(t, resp)
}
