package consumer

import (
	"context"
	"encoding/json"

	"astramaie-backoffice/internal/document"
	"astramaie-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeDocumentRequests renders documents queued through the outbox,
// payslips as PDF.
func ConsumeDocumentRequests(
	ctx context.Context,
	reader *kafkago.Reader,
	documentService document.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.document_requested")
	log.Info("document request consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("document request consumer stopped")
				return
			}
			log.Error("fetch document request message failed", zap.Error(err))
			continue
		}

		var event events.DocumentRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode document_requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		resp, err := documentService.Generate(ctx, document.GenerateDocumentRequest{
			Template:    event.TemplateID,
			EmployeeID:  event.EmployeeID,
			GeneratedOn: event.OccurredAt.UTC().Format("2006-01-02"),
			AsPDF:       event.TemplateID == document.TemplatePayslip,
		})
		if err != nil {
			log.Error("generate document from event failed",
				zap.String("template", event.TemplateID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			// Unknown templates and missing employees will never succeed
			// on retry; drop those instead of spinning on them.
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit document request message failed", zap.Error(err))
			continue
		}

		log.Info("document generated from document_requested event",
			zap.String("document_id", resp.ID),
			zap.String("template", event.TemplateID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
