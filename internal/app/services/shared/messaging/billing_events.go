package messaging

import (
	"context"
	"time"

	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BillingEventPublisher pushes bill lifecycle events to downstream
// consumers (reporting, notifications). Publishing is best-effort: the
// billing workflow logs failures and never fails the request over them.
type BillingEventPublisher interface {
	PublishBillEvent(ctx context.Context, eventType, billID, billNumber string) error
}

type BillEvent struct {
	Type       string    `json:"type"`
	BillID     string    `json:"bill_id"`
	BillNumber string    `json:"bill_number"`
	OccurredAt time.Time `json:"occurred_at"`
}

type billingEventPublisher struct {
	channel *amqp.Channel
	log     *zap.Logger
}

func NewBillingEventPublisher(conn *amqp.Connection, log *zap.Logger) (BillingEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		constvars.QueueBillingEvents,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &billingEventPublisher{channel: channel, log: log}, nil
}

func (p *billingEventPublisher) PublishBillEvent(ctx context.Context, eventType, billID, billNumber string) error {
	event := BillEvent{
		Type:       eventType,
		BillID:     billID,
		BillNumber: billNumber,
		OccurredAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",                             // default exchange
		constvars.QueueBillingEvents,   // routing key
		false,                          // mandatory
		false,                          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.QueueBillingEvents)
	}

	p.log.Info("published billing event",
		zap.String("event_type", eventType),
		zap.String(constvars.LoggingBillNumberKey, billNumber),
		zap.String(constvars.LoggingQueueKey, constvars.QueueBillingEvents),
	)
	return nil
}
