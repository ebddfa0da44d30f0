package service

import (
	"context"

	"customer-service-agent/model"
)

// DataStore is the read-only view of the relational store the agent
// consumes. A lookup miss is (nil, nil); errors mean the store itself
// failed.
type DataStore interface {
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
}

// ConversationLog persists processed turns. Append failures are swallowed
// by the agent; logging is best-effort.
type ConversationLog interface {
	AppendConversation(ctx context.Context, turn *model.ConversationTurn) error
}

// TurnCache mirrors recent turns for fast history reads. Also best-effort.
type TurnCache interface {
	Append(ctx context.Context, turn *model.ConversationTurn) error
}

// Completer is the external text-completion service used when pattern
// matching is not confident enough.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, error)
}
