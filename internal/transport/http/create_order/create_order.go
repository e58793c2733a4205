package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/glowpod/order-svc/internal/intake"
	"github.com/glowpod/order-svc/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	PlaceOrder(ctx context.Context, draft intake.Draft) (order.Order, error)
}

// CreateOrder handles a validated form submission: decode the draft,
// validate it field by field, then run the persist-then-notify pipeline.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var draft intake.Draft

	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to decode request body")
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	// A rule violation blocks submission entirely: the pipeline is never
	// invoked and every violated field gets its message back.
	if err := draft.Validate(); err != nil {
		var fieldErrs intake.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeFieldErrors(w, fieldErrs)

			return
		}
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	placed, err := service.PlaceOrder(r.Context(), draft)
	if err != nil {
		var fieldErrs intake.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeFieldErrors(w, fieldErrs)

			return
		}

		writeError(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error placing order", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(placed); err != nil {
		slog.Error("Error writing response for create order", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		slog.Error("Error writing error response for create order", "error", err)
	}
}

func writeFieldErrors(w http.ResponseWriter, fieldErrs intake.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(map[string]intake.FieldErrors{"errors": fieldErrs}); err != nil {
		slog.Error("Error writing validation response for create order", "error", err)
	}
}
