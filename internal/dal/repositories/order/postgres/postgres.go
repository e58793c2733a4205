package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/glowpod/order-svc/internal/dal/postgres"
	"github.com/glowpod/order-svc/internal/service/models/currency"
	"github.com/glowpod/order-svc/internal/service/models/order"
)

// OrderDal represents order data access layer model
type OrderDal struct {
	Id               int64     `db:"id"`
	CustomerName     string    `db:"customer_name"`
	CustomerEmail    string    `db:"customer_email"`
	CustomerPhone    string    `db:"customer_phone"`
	CustomerWhatsapp string    `db:"customer_whatsapp"`
	CustomerAddress  string    `db:"customer_address"`
	NumUnits         int       `db:"num_units"`
	TotalPrice       int64     `db:"total_price"`
	Currency         string    `db:"currency"`
	CreatedAt        time.Time `db:"created_at"`
}

// ToModel converts OrderDal to service layer Order model
func (o *OrderDal) ToModel() (*order.Order, error) {
	cur, err := currency.ParseCurrency(o.Currency)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:               o.Id,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		CustomerPhone:    o.CustomerPhone,
		CustomerWhatsapp: o.CustomerWhatsapp,
		CustomerAddress:  o.CustomerAddress,
		NumUnits:         o.NumUnits,
		TotalPrice:       o.TotalPrice,
		Currency:         cur,
		CreatedAt:        o.CreatedAt,
	}, nil
}

// PostgresOrderRepository persists orders in the "orders" table.
type PostgresOrderRepository struct {
	client *postgres.Client
}

// NewPostgresOrderRepository creates a new order repository.
func NewPostgresOrderRepository(client *postgres.Client) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		client: client,
	}
}

// Insert writes a single order and returns it with the id and the
// server-assigned creation timestamp. created_at is set by the database,
// not the caller, so ordering cannot be skewed by client clocks.
func (r *PostgresOrderRepository) Insert(ctx context.Context, ord order.Order) (order.Order, error) {
	query, args, err := sq.Insert("orders").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_whatsapp",
			"customer_address",
			"num_units",
			"total_price",
			"currency",
		).
		Values(
			ord.CustomerName,
			ord.CustomerEmail,
			ord.CustomerPhone,
			ord.CustomerWhatsapp,
			ord.CustomerAddress,
			ord.NumUnits,
			ord.TotalPrice,
			ord.Currency.String(),
		).
		Suffix(`RETURNING
			id,
			customer_name,
			customer_email,
			customer_phone,
			customer_whatsapp,
			customer_address,
			num_units,
			total_price,
			currency,
			created_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	dal := OrderDal{}
	row := r.client.Pool().QueryRow(ctx, query, args...)
	err = row.Scan(
		&dal.Id,
		&dal.CustomerName,
		&dal.CustomerEmail,
		&dal.CustomerPhone,
		&dal.CustomerWhatsapp,
		&dal.CustomerAddress,
		&dal.NumUnits,
		&dal.TotalPrice,
		&dal.Currency,
		&dal.CreatedAt,
	)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return *model, nil
}
