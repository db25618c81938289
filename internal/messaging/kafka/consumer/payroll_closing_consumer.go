package consumer

import (
	"context"
	"encoding/json"

	"go-ponto/internal/events"
	"go-ponto/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollClosingApproved renders and archives the payslips of a
// month once its closing is approved. Rendering is idempotent, so redelivery
// after a crash only rewrites the same files.
func ConsumePayrollClosingApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_closing")
	log.Info("payroll closing consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll closing consumer stopped")
				return
			}
			log.Error("fetch payroll closing message failed", zap.Error(err))
			continue
		}

		var event events.PayrollClosingApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll closing event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := payrollService.GeneratePayslips(ctx, event.Month); err != nil {
			log.Error("generate payslips failed",
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll closing message failed", zap.Error(err))
			continue
		}

		log.Info("payslips generated", zap.String("month", event.Month))
	}
}
