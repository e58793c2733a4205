package notifier

import (
	"fmt"
	"strings"
)

// Notification carries the order fields forwarded to the shop owner's
// inbox. Field names match the wire format of the notification endpoint.
type Notification struct {
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerWhatsapp string `json:"customer_whatsapp"`
	CustomerAddress  string `json:"customer_address"`
	NumUnits         int    `json:"num_units"`
	TotalPrice       int64  `json:"total_price"`
}

// Complete reports whether every required field is present.
func (n Notification) Complete() bool {
	return n.CustomerName != "" &&
		n.CustomerEmail != "" &&
		n.CustomerPhone != "" &&
		n.CustomerWhatsapp != "" &&
		n.CustomerAddress != "" &&
		n.NumUnits != 0
}

// Subject returns the email subject line for the notification.
func (n Notification) Subject() string {
	return fmt.Sprintf("New Order - %s", n.CustomerName)
}

// Text returns the plain-text email body: a header plus each order field
// on its own line.
func (n Notification) Text() string {
	return strings.Join([]string{
		"New Order Submitted",
		"",
		fmt.Sprintf("Name: %s", n.CustomerName),
		fmt.Sprintf("Email: %s", n.CustomerEmail),
		fmt.Sprintf("Phone: %s", n.CustomerPhone),
		fmt.Sprintf("WhatsApp: %s", n.CustomerWhatsapp),
		fmt.Sprintf("Address: %s", n.CustomerAddress),
		fmt.Sprintf("Units: %d", n.NumUnits),
		fmt.Sprintf("Total Price: GH₵%d", n.TotalPrice),
	}, "\n")
}
