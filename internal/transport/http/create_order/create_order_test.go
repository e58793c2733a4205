package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glowpod/order-svc/internal/intake"
	"github.com/glowpod/order-svc/internal/metrics"
	"github.com/glowpod/order-svc/internal/service/models/currency"
	"github.com/glowpod/order-svc/internal/service/models/order"
	"github.com/glowpod/order-svc/internal/service/services/ordersvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	calls int
	err   error
}

func (s *stubService) PlaceOrder(_ context.Context, draft intake.Draft) (order.Order, error) {
	s.calls++
	if s.err != nil {
		return order.Order{}, s.err
	}

	return order.Order{
		ID:               42,
		CustomerName:     draft.CustomerName,
		CustomerEmail:    draft.CustomerEmail,
		CustomerPhone:    draft.CustomerPhone,
		CustomerWhatsapp: draft.CustomerWhatsapp,
		CustomerAddress:  draft.CustomerAddress,
		NumUnits:         draft.NumUnits,
		TotalPrice:       2800,
		Currency:         currency.CurrencyGHS,
		CreatedAt:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil
}

func validBody() string {
	return `{
		"customer_name": "John Doe",
		"customer_email": "john@example.com",
		"customer_phone": "0244000000",
		"customer_whatsapp": "0244000000",
		"customer_address": "123 Main Street, Accra",
		"num_units": 2
	}`
}

func doRequest(svc *stubService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrderSuccess(t *testing.T) {
	svc := &stubService{}
	rec := doRequest(svc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.calls)

	var placed order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	assert.Equal(t, int64(42), placed.ID)
	assert.Equal(t, int64(2800), placed.TotalPrice)
	assert.Equal(t, "John Doe", placed.CustomerName)
}

func TestCreateOrderMalformedBody(t *testing.T) {
	svc := &stubService{}
	rec := doRequest(svc, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	svc := &stubService{}
	body := strings.Replace(validBody(), "John Doe", "A", 1)

	rec := doRequest(svc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls, "no pipeline call on validation failure")

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Name must be at least 2 characters", resp.Errors["customer_name"])
}

func TestCreateOrderPipelineFailure(t *testing.T) {
	svc := &stubService{err: &ordersvc.StepError{
		Step:    metrics.StepNotify,
		Message: "Failed to send email",
	}}

	rec := doRequest(svc, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send email", resp["error"])
}
