package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/config"
	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type LegacyOrderImporter interface {
	ImportLegacyOrder(ctx context.Context, l entities.LegacyOrder) (entities.Order, error)
}

// LegacyOrderMessage заказ в плоском формате веб-клиента.
type LegacyOrderMessage struct {
	ListNo        string `json:"listNo"`
	OrdererName   string `json:"ordererName" validate:"required"`
	ProductList   string `json:"productList" validate:"required"`
	Quantity      int    `json:"quantity" validate:"gt=0,lte=2147483647"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	InvoiceStatus string `json:"invoiceStatus"`
}

func (m LegacyOrderMessage) ToEntity() entities.LegacyOrder {
	return entities.LegacyOrder{
		ListNo:        m.ListNo,
		OrdererName:   m.OrdererName,
		ProductName:   m.ProductList,
		Quantity:      m.Quantity,
		Status:        m.Status,
		PaymentStatus: m.PaymentStatus,
		InvoiceStatus: m.InvoiceStatus,
	}
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	importer LegacyOrderImporter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, importer LegacyOrderImporter) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: newValidator(),
		importer: importer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		legacyOrdersInProgress.Inc()
		start := time.Now()

		if err := h.handleLegacyOrder(ctx, m); err != nil {
			legacyOrdersFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				legacyOrdersInProgress.Dec()
				continue
			}
			legacyOrdersDLQ.Inc()
		} else {
			legacyOrdersImported.Inc()
		}

		legacyOrderProcessingDuration.Observe(time.Since(start).Seconds())
		legacyOrdersInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleLegacyOrder(ctx context.Context, m kafka.Message) error {
	var msg LegacyOrderMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal legacy order: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid legacy order: %w", err)
	}

	order, err := h.importer.ImportLegacyOrder(ctx, msg.ToEntity())
	if err != nil {
		return err
	}

	h.logger.Debug("legacy order imported", slog.Int64("orderID", order.ID), slog.String("listNo", msg.ListNo))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
