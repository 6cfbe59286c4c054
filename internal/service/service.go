// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sound1ust/product-service/internal/store"
	"github.com/sound1ust/product-service/pkg/messaging"
	"github.com/sound1ust/product-service/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create adds a new product to the system.
	// Returns ErrProductExists if the name is already taken.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns products matching keyword, optionally narrowed by an
	// exact category and capped by limit.
	// Returns ErrProductsNotFound when nothing matches.
	FindAll(ctx context.Context, keyword, category string, limit int32) ([]ProductDto, error)

	// Update replaces an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID,
	// ErrProductExists if the new name collides with another product.
	Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID and returns its last state.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) (*ProductDto, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	store           store.ProductStore
	publisher       messaging.Publisher
	productsCounter metric.Int64Counter
}

// NewService creates a new instance of ProductService with the provided
// store and event publisher. The publisher may be nil, in which case no
// events are emitted.
func NewService(productStore store.ProductStore, publisher messaging.Publisher) *Service {
	meter := otel.Meter("product-service")
	productsCounter, err := meter.Int64Counter("products_created", metric.WithDescription("Total number of created products"))
	if err != nil {
		panic(fmt.Sprintf("failed to create products_created counter: %v", err))
	}
	return &Service{
		store:           productStore,
		publisher:       publisher,
		productsCounter: productsCounter,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name     string          `json:"name"     validate:"required,max=255"`
	Category string          `json:"category" validate:"omitempty,max=255"`
	Price    decimal.Decimal `json:"price"`
}

// ProductUpdateDto represents the data transfer object for replacing a product.
type ProductUpdateDto struct {
	Name     string          `json:"name"     validate:"required,max=255"`
	Category string          `json:"category" validate:"omitempty,max=255"`
	Price    decimal.Decimal `json:"price"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

// Create creates a new product and returns it as a ProductDto.
// Returns ErrProductExists if the name is already taken.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	created, err := s.store.Create(ctx, product.Name, toNullable(product.Category), product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	dto := toDto(created)
	s.publish(ctx, events.ProductCreatedEvent{
		EventID:    uuid.New(),
		Carrier:    traceCarrier(ctx),
		ProductID:  dto.ID,
		Name:       dto.Name,
		Category:   dto.Category,
		Price:      dto.Price,
		OccurredAt: time.Now().UTC(),
	})
	// increase the number of created products
	s.productsCounter.Add(ctx, 1)

	return dto, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves products matching keyword and returns them as ProductDtos.
// Returns ErrProductsNotFound when nothing matches.
func (s *Service) FindAll(ctx context.Context, keyword, category string, limit int32) ([]ProductDto, error) {
	products, err := s.store.FindAll(ctx, keyword, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDtos := make([]ProductDto, len(products))

	for i, item := range products {
		productDtos[i] = *toDto(&item)
	}

	return productDtos, nil
}

// Update replaces an existing product's details and returns the updated
// product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID,
// ErrProductExists if the new name collides with another product.
func (s *Service) Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.store.Update(ctx, id, product.Name, toNullable(product.Category), product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	dto := toDto(updated)
	s.publish(ctx, events.ProductUpdatedEvent{
		EventID:    uuid.New(),
		Carrier:    traceCarrier(ctx),
		ProductID:  dto.ID,
		Name:       dto.Name,
		Category:   dto.Category,
		Price:      dto.Price,
		OccurredAt: time.Now().UTC(),
	})

	return dto, nil
}

// DeleteByID deletes a product by its ID and returns its last state.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) (*ProductDto, error) {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}

	dto := toDto(deleted)
	s.publish(ctx, events.ProductDeletedEvent{
		EventID:    uuid.New(),
		Carrier:    traceCarrier(ctx),
		ProductID:  dto.ID,
		Name:       dto.Name,
		Category:   dto.Category,
		Price:      dto.Price,
		OccurredAt: time.Now().UTC(),
	})

	return dto, nil
}

// publish sends an event, logging failures instead of surfacing them to the
// caller.
func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

// traceCarrier captures the trace context of ctx for propagation inside an
// event payload.
func traceCarrier(ctx context.Context) propagation.MapCarrier {
	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	dto := &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
	if product.Category != nil {
		dto.Category = *product.Category
	}
	return dto
}

// toNullable maps an empty category to its NULL column representation.
func toNullable(category string) *string {
	if category == "" {
		return nil
	}
	return &category
}
