package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher: то, что адаптеру нужно от rabbitmq_producer.Publisher
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// InquiryCreatedDTO: тело события о новой заявке
type InquiryCreatedDTO struct {
	InquiryID     string    `json:"inquiry_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Message       string    `json:"message"`
	PropertyID    string    `json:"property_id,omitempty"`
	PropertyTitle string    `json:"property_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type InquiryNotifierAdapter struct {
	producer   Publisher
	routingKey string
	timeout    time.Duration
}

func NewInquiryNotifierAdapter(producer Publisher, routingKey string) (*InquiryNotifierAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &InquiryNotifierAdapter{
		producer:   producer,
		routingKey: routingKey,
		timeout:    10 * time.Second,
	}, nil
}

func (a *InquiryNotifierAdapter) InquiryCreated(ctx context.Context, inquiry domain.Inquiry) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "InquiryNotifierAdapter",
		"routing_key": a.routingKey,
		"inquiry_id":  inquiry.ID,
	})

	body, err := json.Marshal(InquiryCreatedDTO{
		InquiryID:     inquiry.ID,
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Message:       inquiry.Message,
		PropertyID:    inquiry.PropertyID,
		PropertyTitle: inquiry.PropertyTitle,
		CreatedAt:     inquiry.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal inquiry: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		MessageId:    inquiry.ID,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish inquiry event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish inquiry %s: %w", inquiry.ID, err)
	}

	adapterLogger.Debug("Inquiry event published", nil)
	return nil
}
