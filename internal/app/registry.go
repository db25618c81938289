package app

import (
	"database/sql"
	"os"

	"go-ponto/internal/auth"
	"go-ponto/internal/employee"
	"go-ponto/internal/justification"
	"go-ponto/internal/messaging/kafka"
	"go-ponto/internal/middleware"
	"go-ponto/internal/payroll"
	"go-ponto/internal/payslip"
	"go-ponto/internal/rbac"
	"go-ponto/internal/servicereport"
	"go-ponto/internal/settings"
	"go-ponto/internal/timebank"
	"go-ponto/internal/timeclock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	justificationRepo := justification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	serviceReportRepo := servicereport.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	timeclockRepo := timeclock.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	justificationService := justification.NewService(db, justificationRepo)
	payslipService := payslip.NewService(payslipRepo)
	payrollService := payroll.NewService(payroll.Deps{
		DB:             db,
		Repo:           payrollRepo,
		Employees:      employeeRepo,
		Punches:        timeclockRepo,
		Justifications: justificationRepo,
		Outbox:         outboxRepo,
		Payslips:       payslipRepo,
		Redis:          rdb,
		PayslipDir:     os.Getenv("PAYSLIP_DIR"),
	})
	serviceReportService := servicereport.NewService(serviceReportRepo, employeeRepo)
	settingsService := settings.NewService(db, settingsRepo)
	timebankService := timebank.NewService(employeeRepo, settingsRepo, timeclockRepo, justificationRepo)
	timeclockService := timeclock.NewService(db, timeclockRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	justificationHandler := justification.NewHandler(justificationService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	payslipHandler := payslip.NewHandler(payslipService)
	serviceReportHandler := servicereport.NewHandler(serviceReportService)
	settingsHandler := settings.NewHandler(settingsService)
	timebankHandler := timebank.NewHandler(timebankService)
	timeclockHandler := timeclock.NewHandler(timeclockService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		justification.RegisterRoutes(api, justificationHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		payslip.RegisterRoutes(api, payslipHandler, rbacService)
		servicereport.RegisterRoutes(api, serviceReportHandler, rbacService)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		timebank.RegisterRoutes(api, timebankHandler, rbacService)
		timeclock.RegisterRoutes(api, timeclockHandler, rbacService)
	}

	return nil
}
