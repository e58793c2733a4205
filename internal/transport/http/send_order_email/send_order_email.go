package sendorderemail

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowpod/order-svc/internal/metrics"
	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/internal/service/models/pricing"
)

// Fixed messages of the notification endpoint contract.
const (
	msgMissingConfig = "Missing Resend configuration"
	msgMissingFields = "Missing required fields"
	msgInvalidUnits  = "Invalid unit count"
	msgSendFailed    = "Failed to send email"
	msgUnexpected    = "An error occurred while sending the email"
)

// SendOrderEmail forwards order details to the shop owner as a
// plain-text email. The mail configuration is injected by the caller, not
// read from ambient environment state; an incomplete configuration
// rejects the request before the body is inspected.
func SendOrderEmail(w http.ResponseWriter, r *http.Request, cfg notifier.MailConfig, mailer notifier.Mailer) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Panic while sending order email", "panic", rec)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgUnexpected})
		}
	}()

	if !cfg.Complete() {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgMissingConfig})

		return
	}

	var n notifier.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		slog.Error("Error decoding notification request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgMissingFields})

		return
	}

	if !n.Complete() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgMissingFields})

		return
	}

	// The total is recomputed from the unit count against the price
	// table; the client-supplied value is ignored.
	totalPrice, err := pricing.PriceFor(n.NumUnits)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgInvalidUnits})

		return
	}
	n.TotalPrice = totalPrice

	mail := notifier.Mail{
		From:    cfg.FromEmail,
		To:      cfg.ToEmail,
		Subject: n.Subject(),
		Text:    n.Text(),
	}

	if err := mailer.Send(r.Context(), mail); err != nil {
		metrics.EmailsFailed.Inc()
		slog.Error("Failed to send order email", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgSendFailed})

		return
	}

	metrics.EmailsSent.Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error writing notification response", "error", err)
	}
}
