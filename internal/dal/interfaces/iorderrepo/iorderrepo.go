package iorderrepo

import (
	"context"

	"github.com/glowpod/order-svc/internal/service/models/order"
)

// IOrderRepository is an interface for the order store. The store is
// add-only: orders are never read back, updated, or deleted by this
// system.
type IOrderRepository interface {
	Insert(ctx context.Context, ord order.Order) (order.Order, error)
}
