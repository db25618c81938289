package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ponto/internal/employee"
	"go-ponto/internal/events"
	"go-ponto/internal/justification"
	"go-ponto/internal/messaging/kafka/consumer"
	"go-ponto/internal/payroll"
	"go-ponto/internal/payslip"
	"go-ponto/internal/shared/connection"
	"go-ponto/internal/timeclock"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders payslip PDFs whenever a payroll closing is approved.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	payrollService := payroll.NewService(payroll.Deps{
		DB:             sqlDB,
		Repo:           payroll.NewRepository(gormDB),
		Employees:      employee.NewRepository(gormDB),
		Punches:        timeclock.NewRepository(gormDB),
		Justifications: justification.NewRepository(gormDB),
		Payslips:       payslip.NewRepository(gormDB),
		PayslipDir:     os.Getenv("PAYSLIP_DIR"),
	})

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollClosingApprovedTopic,
		GroupID:        "go-ponto-payslip-renderer",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollClosingApproved(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
