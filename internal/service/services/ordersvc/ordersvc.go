package ordersvc

import (
	"context"
	"log/slog"

	"github.com/glowpod/order-svc/internal/dal/interfaces/iorderrepo"
	"github.com/glowpod/order-svc/internal/intake"
	"github.com/glowpod/order-svc/internal/metrics"
	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/internal/service/models/order"
	"github.com/glowpod/order-svc/internal/service/models/pricing"
	"go.opentelemetry.io/otel"
)

// orderNotifier delivers order details to the notification endpoint.
type orderNotifier interface {
	Notify(ctx context.Context, n notifier.Notification) error
}

// OrderService runs the order submission pipeline: persist the order,
// then notify. The two steps are strictly sequential and neither is
// retried; a persisted order is never rolled back when notification
// fails.
type OrderService struct {
	orderRepo iorderrepo.IOrderRepository
	notifier  orderNotifier
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderRepo == nil {
		panic("ordersvc: order repository is not configured")
	}
	if s.notifier == nil {
		panic("ordersvc: notifier is not configured")
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithNotifier sets the notification client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithNotifier(n orderNotifier) option {
	return func(s *OrderService) {
		s.notifier = n
	}
}

// PlaceOrder validates the draft, resolves the total from the price
// table, writes the order, then posts the notification. The total is
// always recomputed here from the unit count; a client-supplied total is
// never trusted.
func (s *OrderService) PlaceOrder(ctx context.Context, draft intake.Draft) (order.Order, error) {
	ctx, span := otel.Tracer("order-svc").Start(ctx, "OrderService.PlaceOrder")
	defer span.End()

	if err := draft.Validate(); err != nil {
		return order.Order{}, err
	}

	totalPrice, err := pricing.PriceFor(draft.NumUnits)
	if err != nil {
		return order.Order{}, err
	}

	ord := order.Order{
		CustomerName:     draft.CustomerName,
		CustomerEmail:    draft.CustomerEmail,
		CustomerPhone:    draft.CustomerPhone,
		CustomerWhatsapp: draft.CustomerWhatsapp,
		CustomerAddress:  draft.CustomerAddress,
		NumUnits:         draft.NumUnits,
		TotalPrice:       totalPrice,
		Currency:         pricing.PriceCurrency,
	}

	inserted, err := s.orderRepo.Insert(ctx, ord)
	if err != nil {
		metrics.SubmissionFailures.WithLabelValues(metrics.StepPersist).Inc()
		slog.Error("Failed to persist order", "error", err)

		// Notification is never attempted when the write fails.
		return order.Order{}, &StepError{
			Step:    metrics.StepPersist,
			Message: "Failed to save order",
			Err:     err,
		}
	}
	metrics.OrdersCreated.Inc()

	notification := notifier.Notification{
		CustomerName:     inserted.CustomerName,
		CustomerEmail:    inserted.CustomerEmail,
		CustomerPhone:    inserted.CustomerPhone,
		CustomerWhatsapp: inserted.CustomerWhatsapp,
		CustomerAddress:  inserted.CustomerAddress,
		NumUnits:         inserted.NumUnits,
		TotalPrice:       inserted.TotalPrice,
	}

	if err := s.notifier.Notify(ctx, notification); err != nil {
		metrics.SubmissionFailures.WithLabelValues(metrics.StepNotify).Inc()
		slog.Error("Failed to send order notification", "error", err, "order_id", inserted.ID)

		// The order stays persisted; there is no compensating delete.
		return inserted, &StepError{
			Step:    metrics.StepNotify,
			Message: err.Error(),
			Err:     err,
		}
	}

	slog.Info("Order placed", "order_id", inserted.ID, "num_units", inserted.NumUnits)

	return inserted, nil
}
