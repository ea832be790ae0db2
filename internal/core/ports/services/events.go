package services

import "context"

// EventPublisher publishes ledger events to an external broker. Publishing is
// best-effort: the ledger append has already committed when Publish is called.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
	Close() error
}
