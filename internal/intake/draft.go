package intake

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Draft is the pre-submission order form state. It is transient: the
// durable copy of an order only exists once the submission pipeline has
// persisted it.
type Draft struct {
	CustomerName     string `json:"customer_name"     validate:"required,min=2"`
	CustomerEmail    string `json:"customer_email"    validate:"required,email"`
	CustomerPhone    string `json:"customer_phone"    validate:"required,min=10"`
	CustomerWhatsapp string `json:"customer_whatsapp" validate:"required,min=10"`
	CustomerAddress  string `json:"customer_address"  validate:"required,min=10"`
	NumUnits         int    `json:"num_units"         validate:"required,oneof=1 2 3"`
}

// FieldErrors maps a draft field to the message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, field := range draftFields {
		if msg, ok := e[field]; ok {
			msgs = append(msgs, msg)
		}
	}

	return strings.Join(msgs, "; ")
}

// draftFields fixes the rendering order of field errors.
var draftFields = []string{
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_whatsapp",
	"customer_address",
	"num_units",
}

var fieldMessages = map[string]string{
	"customer_name":     "Name must be at least 2 characters",
	"customer_email":    "Invalid email address",
	"customer_phone":    "Phone number must be at least 10 characters",
	"customer_whatsapp": "WhatsApp number must be at least 10 characters",
	"customer_address":  "Address must be at least 10 characters",
	"num_units":         "Units must be 1, 2 or 3",
}

var jsonNames = map[string]string{
	"CustomerName":     "customer_name",
	"CustomerEmail":    "customer_email",
	"CustomerPhone":    "customer_phone",
	"CustomerWhatsapp": "customer_whatsapp",
	"CustomerAddress":  "customer_address",
	"NumUnits":         "num_units",
}

var validate = validator.New()

// Validate applies the form's field rules. It returns nil when the draft
// may be submitted, or FieldErrors describing every violated rule.
// Validation never performs a network call.
func (d *Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, ve := range verrs {
		field := jsonNames[ve.StructField()]
		fieldErrs[field] = fieldMessages[field]
	}

	return fieldErrs
}
