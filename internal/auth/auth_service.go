package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-ponto/internal/auth/errors"
	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, cpf, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, employeeID string) (*employee.EmployeeResponse, error)
}

type service struct {
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{employees: employees, logger: l.Named("auth_service")}
}

func (s *service) Login(ctx context.Context, cpf, password string) (string, string, AuthResponse, error) {
	normalized := employee.NormalizeCPF(cpf)
	if normalized == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	emp, err := s.employees.FindByCPF(ctx, normalized)
	if err != nil || emp == nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !emp.Active {
		return "", "", AuthResponse{}, autherrors.ErrInactiveEmployee
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(emp.ID.String(), emp.Role, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	refreshToken, err := s.generateToken(emp.ID.String(), emp.Role, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("employee logged in", zap.String("employee_id", emp.ID.String()))

	return accessToken, refreshToken, AuthResponse{Employee: employee.MapEmployeeToResponse(*emp)}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil || emp == nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	if !emp.Active {
		return "", "", AuthResponse{}, autherrors.ErrInactiveEmployee
	}

	newAccessToken, err := s.generateToken(emp.ID.String(), emp.Role, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	newRefreshToken, err := s.generateToken(emp.ID.String(), emp.Role, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return newAccessToken, newRefreshToken, AuthResponse{Employee: employee.MapEmployeeToResponse(*emp)}, nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (*employee.EmployeeResponse, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil || emp == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	resp := employee.MapEmployeeToResponse(*emp)
	return &resp, nil
}

func (s *service) generateToken(employeeID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     employeeID,
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
