package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"astramaie-backoffice/internal/deduction"
	"astramaie-backoffice/internal/document"
	"astramaie-backoffice/internal/employee"
	"astramaie-backoffice/internal/events"
	"astramaie-backoffice/internal/messaging/kafka/consumer"
	"astramaie-backoffice/internal/payroll"
	"astramaie-backoffice/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

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

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	payrollService := payroll.NewService(employeeRepo, deductionRepo, nil, redisClient)
	documentService := document.NewService(documentRepo, employeeRepo, payrollService)

	lifecycleReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "backoffice-employee-contract",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer lifecycleReader.Close()

	requestReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.DocumentRequestedTopic,
		GroupID:        "backoffice-document-render",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer requestReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, documentService, logger)
	go consumer.ConsumeDocumentRequests(ctx, requestReader, documentService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
