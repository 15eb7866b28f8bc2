package ports

import "context"

// EventPublisher delivers core events to the external notification
// dispatcher. Delivery failure must never roll back core state.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
