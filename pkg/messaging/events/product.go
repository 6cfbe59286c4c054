package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sound1ust/product-service/pkg/messaging"
	"go.opentelemetry.io/otel/propagation"
)

// ProductCreatedEvent is published after a product row has been inserted.
// Carrier transports the trace context of the originating request.
type ProductCreatedEvent struct {
	EventID    uuid.UUID              `json:"event_id"`
	Carrier    propagation.MapCarrier `json:"carrier,omitempty"`
	ProductID  int64                  `json:"product_id"`
	Name       string                 `json:"name"`
	Category   string                 `json:"category,omitempty"`
	Price      decimal.Decimal        `json:"price"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (p ProductCreatedEvent) Subject() string {
	return messaging.ProductsCreatedSubject
}

func (p ProductCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(p)
}

// ProductUpdatedEvent is published after a product row has been replaced.
type ProductUpdatedEvent struct {
	EventID    uuid.UUID              `json:"event_id"`
	Carrier    propagation.MapCarrier `json:"carrier,omitempty"`
	ProductID  int64                  `json:"product_id"`
	Name       string                 `json:"name"`
	Category   string                 `json:"category,omitempty"`
	Price      decimal.Decimal        `json:"price"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (p ProductUpdatedEvent) Subject() string {
	return messaging.ProductsUpdatedSubject
}

func (p ProductUpdatedEvent) Payload() ([]byte, error) {
	return json.Marshal(p)
}

// ProductDeletedEvent is published after a product row has been removed.
// It carries the last state of the product.
type ProductDeletedEvent struct {
	EventID    uuid.UUID              `json:"event_id"`
	Carrier    propagation.MapCarrier `json:"carrier,omitempty"`
	ProductID  int64                  `json:"product_id"`
	Name       string                 `json:"name"`
	Category   string                 `json:"category,omitempty"`
	Price      decimal.Decimal        `json:"price"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (p ProductDeletedEvent) Subject() string {
	return messaging.ProductsDeletedSubject
}

func (p ProductDeletedEvent) Payload() ([]byte, error) {
	return json.Marshal(p)
}
