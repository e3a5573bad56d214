package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/contracts"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	pkg_rabbitmq "handmedown-service/pkg/rabbitmq"
)

// PieceCreatedDTO - тело события "объявление создано".
type PieceCreatedDTO struct {
	PieceID   string  `json:"piece_id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Kind      string  `json:"kind"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// PieceStatusChangedDTO - тело события "статус объявления изменился".
type PieceStatusChangedDTO struct {
	PieceID   string `json:"piece_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	ChangedAt string `json:"changed_at"`
}

// PieceEventsAdapter публикует события жизненного цикла объявлений.
// Каждое тело перед публикацией проверяется по его JSON-схеме:
// невалидное событие в брокер не уходит.
type PieceEventsAdapter struct {
	producer *pkg_rabbitmq.Publisher
}

func NewPieceEventsAdapter(producer *pkg_rabbitmq.Publisher) (*PieceEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &PieceEventsAdapter{producer: producer}, nil
}

func (a *PieceEventsAdapter) PieceCreated(ctx context.Context, piece *domain.Piece) error {
	kind := "donated"
	if piece.IsSold() {
		kind = "sold"
	}

	dto := PieceCreatedDTO{
		PieceID:   piece.ID.String(),
		UserID:    piece.UserID.String(),
		Name:      piece.Name,
		Category:  piece.Category.String(),
		Kind:      kind,
		Price:     piece.Price,
		Status:    piece.Status.String(),
		CreatedAt: piece.CreatedAt.UTC().Format(time.RFC3339),
	}

	return a.publish(ctx, "PieceCreatedEvent", constants.RoutingKeyPieceCreated, piece, dto)
}

func (a *PieceEventsAdapter) PieceStatusChanged(ctx context.Context, piece *domain.Piece) error {
	dto := PieceStatusChangedDTO{
		PieceID:   piece.ID.String(),
		UserID:    piece.UserID.String(),
		Status:    piece.Status.String(),
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return a.publish(ctx, "PieceStatusChangedEvent", constants.RoutingKeyPieceStatusChanged, piece, dto)
}

func (a *PieceEventsAdapter) publish(ctx context.Context, eventType, routingKey string, piece *domain.Piece, dto interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PieceEventsAdapter",
		"routing_key": routingKey,
		"piece_id":    piece.ID.String(),
	})

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	if err := contracts.ValidateEvent(eventType, "1.0.0", body); err != nil {
		logger.Error("Event body does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid event body: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		logger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event for piece %s: %w", piece.ID, err)
	}

	logger.Debug("Event published", port.Fields{"event_type": eventType})
	return nil
}
