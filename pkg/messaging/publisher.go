// Package messaging defines the event publishing contract.
package messaging

import "context"

// Subjects for product lifecycle events.
const (
	ProductsCreatedSubject = "products.created"
	ProductsUpdatedSubject = "products.updated"
	ProductsDeletedSubject = "products.deleted"
)

// Event is a domain event addressed to a broker subject.
type Event interface {
	// Subject returns the subject the event is published to.
	Subject() string
	// Payload returns the serialized event body.
	Payload() ([]byte, error)
}

// Publisher delivers events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
