package ordersvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowpod/order-svc/internal/intake"
	"github.com/glowpod/order-svc/internal/metrics"
	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/internal/service/models/currency"
	"github.com/glowpod/order-svc/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	inserted []order.Order
	err      error
}

func (s *stubOrderRepo) Insert(_ context.Context, ord order.Order) (order.Order, error) {
	if s.err != nil {
		return order.Order{}, s.err
	}

	ord.ID = int64(len(s.inserted) + 1)
	ord.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.inserted = append(s.inserted, ord)

	return ord, nil
}

type stubNotifier struct {
	notifications []notifier.Notification
	err           error
}

func (s *stubNotifier) Notify(_ context.Context, n notifier.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.notifications = append(s.notifications, n)

	return nil
}

func validDraft() intake.Draft {
	return intake.Draft{
		CustomerName:     "John Doe",
		CustomerEmail:    "john@example.com",
		CustomerPhone:    "0244000000",
		CustomerWhatsapp: "0244000000",
		CustomerAddress:  "123 Main Street, Accra",
		NumUnits:         2,
	}
}

func newService(repo *stubOrderRepo, n *stubNotifier) *OrderService {
	return MustNewOrderService(
		WithOrderRepository(repo),
		WithNotifier(n),
	)
}

func TestPlaceOrderSuccess(t *testing.T) {
	repo := &stubOrderRepo{}
	notif := &stubNotifier{}
	svc := newService(repo, notif)

	placed, err := svc.PlaceOrder(context.Background(), validDraft())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1, "exactly one persisted order")
	require.Len(t, notif.notifications, 1, "exactly one outbound notification")

	assert.Equal(t, int64(2800), placed.TotalPrice)
	assert.Equal(t, currency.CurrencyGHS, placed.Currency)
	assert.Equal(t, int64(1), placed.ID)
	assert.False(t, placed.CreatedAt.IsZero())

	sent := notif.notifications[0]
	assert.Equal(t, "John Doe", sent.CustomerName)
	assert.Equal(t, "john@example.com", sent.CustomerEmail)
	assert.Equal(t, "0244000000", sent.CustomerPhone)
	assert.Equal(t, "0244000000", sent.CustomerWhatsapp)
	assert.Equal(t, "123 Main Street, Accra", sent.CustomerAddress)
	assert.Equal(t, 2, sent.NumUnits)
	assert.Equal(t, int64(2800), sent.TotalPrice)
}

func TestPlaceOrderTotalsFollowPriceTable(t *testing.T) {
	tests := []struct {
		numUnits int
		want     int64
	}{
		{numUnits: 1, want: 1500},
		{numUnits: 2, want: 2800},
		{numUnits: 3, want: 4000},
	}

	for _, tt := range tests {
		repo := &stubOrderRepo{}
		notif := &stubNotifier{}
		svc := newService(repo, notif)

		draft := validDraft()
		draft.NumUnits = tt.numUnits

		placed, err := svc.PlaceOrder(context.Background(), draft)
		require.NoError(t, err, "units=%d", tt.numUnits)
		assert.Equal(t, tt.want, placed.TotalPrice)
		assert.Equal(t, tt.want, notif.notifications[0].TotalPrice)
	}
}

func TestPlaceOrderValidationBlocksPipeline(t *testing.T) {
	repo := &stubOrderRepo{}
	notif := &stubNotifier{}
	svc := newService(repo, notif)

	draft := validDraft()
	draft.CustomerEmail = "not-an-email"

	_, err := svc.PlaceOrder(context.Background(), draft)

	var fieldErrs intake.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Empty(t, repo.inserted)
	assert.Empty(t, notif.notifications)
}

func TestPlaceOrderPersistFailureSkipsNotification(t *testing.T) {
	repo := &stubOrderRepo{err: errors.New("connection refused")}
	notif := &stubNotifier{}
	svc := newService(repo, notif)

	_, err := svc.PlaceOrder(context.Background(), validDraft())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, metrics.StepPersist, stepErr.Step)
	assert.Equal(t, "Failed to save order", stepErr.Error())
	assert.ErrorContains(t, stepErr.Unwrap(), "connection refused")

	assert.Empty(t, notif.notifications, "notification never attempted after a failed write")
}

func TestPlaceOrderNotifyFailureKeepsOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	notif := &stubNotifier{err: errors.New("Missing Resend configuration")}
	svc := newService(repo, notif)

	placed, err := svc.PlaceOrder(context.Background(), validDraft())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, metrics.StepNotify, stepErr.Step)
	assert.Equal(t, "Missing Resend configuration", stepErr.Error(), "endpoint message is surfaced as-is")

	require.Len(t, repo.inserted, 1, "order stays persisted, no compensating delete")
	assert.Equal(t, int64(1), placed.ID)
}

func TestMustNewOrderServicePanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() {
		MustNewOrderService()
	})
	assert.Panics(t, func() {
		MustNewOrderService(WithOrderRepository(&stubOrderRepo{}))
	})
}
