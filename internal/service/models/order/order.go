package order

import (
	"time"

	"github.com/glowpod/order-svc/internal/service/models/currency"
)

// Order represents one customer's purchase request. An order is written
// exactly once; there is no update or delete path.
type Order struct {
	ID               int64             `json:"id"`
	CustomerName     string            `json:"customer_name"`
	CustomerEmail    string            `json:"customer_email"`
	CustomerPhone    string            `json:"customer_phone"`
	CustomerWhatsapp string            `json:"customer_whatsapp"`
	CustomerAddress  string            `json:"customer_address"`
	NumUnits         int               `json:"num_units"`
	TotalPrice       int64             `json:"total_price"`
	Currency         currency.Currency `json:"currency"`
	CreatedAt        time.Time         `json:"created_at"`
}
