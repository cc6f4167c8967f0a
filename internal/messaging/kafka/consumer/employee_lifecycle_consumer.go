package consumer

import (
	"context"
	"encoding/json"

	"astramaie-backoffice/internal/document"
	"astramaie-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle generates the employment contract for every
// newly created employee. Redelivered events are skipped once a contract
// exists.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	documentService document.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		exists, err := documentService.HasDocument(ctx, event.EmployeeID, document.TemplateContract)
		if err != nil {
			log.Error("contract existence check failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}
		if exists {
			log.Warn("contract already exists for event, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = documentService.Generate(ctx, document.GenerateDocumentRequest{
			Template:    document.TemplateContract,
			EmployeeID:  event.EmployeeID,
			GeneratedOn: event.OccurredAt.UTC().Format("2006-01-02"),
		})
		if err != nil {
			log.Error("generate contract from employee_created event failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("contract generated from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
