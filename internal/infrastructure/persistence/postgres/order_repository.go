package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `
	id, custom_order_number, customer_id,
	billing_address_id, shipping_address_id, pickup_address_id,
	order_total::text, order_tax::text, order_shipping_excl_tax::text, shipping_method,
	refunded_amount::text, order_status, payment_status, paid_at, created_at`

// OrderRepository reads and updates host orders together with their customer and addresses.
type OrderRepository struct {
	q Executor
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{q: db.Pool}
}

// Create inserts the order with its lines and checkout attributes and sets o.ID.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `
		INSERT INTO orders (
			custom_order_number, customer_id, billing_address_id, shipping_address_id, pickup_address_id,
			order_total, order_tax, order_shipping_excl_tax, shipping_method, refunded_amount,
			order_status, payment_status, paid_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		o.CustomOrderNumber,
		o.CustomerID,
		o.BillingAddressID,
		o.ShippingAddressID,
		o.PickupAddressID,
		o.OrderTotal.String(),
		o.OrderTax.String(),
		o.OrderShippingExclTax.String(),
		o.ShippingMethod,
		o.RefundedAmount.String(),
		string(o.OrderStatus),
		string(o.PaymentStatus),
		o.PaidAt,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, sku, product_name, quantity, unit_price_excl_tax)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, o.ID, item.ProductID, item.SKU, item.ProductName, item.Quantity, item.UnitPriceExclTax.String()).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	for _, attr := range o.CheckoutAttributes {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_checkout_attributes (order_id, attribute, value, price)
			VALUES ($1, $2, $3, $4)
		`, o.ID, attr.Attribute, attr.Value, attr.Price.String())
		if err != nil {
			return fmt.Errorf("failed to create checkout attribute: %w", err)
		}
	}

	return nil
}

// FindByID loads an order with its lines and checkout attributes.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if order.Items, err = r.findItems(ctx, id); err != nil {
		return nil, err
	}
	if order.CheckoutAttributes, err = r.findCheckoutAttributes(ctx, id); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, product_id, sku, product_name, quantity, unit_price_excl_tax::text
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderItem, error) {
		var m OrderItemModel
		if err := row.Scan(&m.ID, &m.ProductID, &m.SKU, &m.ProductName, &m.Quantity, &m.UnitPriceExclTax); err != nil {
			return domain.OrderItem{}, err
		}
		return toDomainItem(m)
	})
	if err != nil {
		return nil, fmt.Errorf("collect order items: %w", err)
	}
	return items, nil
}

func (r *OrderRepository) findCheckoutAttributes(ctx context.Context, orderID int64) ([]domain.CheckoutAttributeValue, error) {
	query := `
		SELECT attribute, value, price::text
		FROM order_checkout_attributes WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("query checkout attributes: %w", err)
	}
	attrs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CheckoutAttributeValue, error) {
		var m CheckoutAttributeModel
		if err := row.Scan(&m.Attribute, &m.Value, &m.Price); err != nil {
			return domain.CheckoutAttributeValue{}, err
		}
		return toDomainCheckoutAttribute(m)
	})
	if err != nil {
		return nil, fmt.Errorf("collect checkout attributes: %w", err)
	}
	return attrs, nil
}

// Update persists the mutable payment-facing state of an order.
func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `
		UPDATE orders SET
			order_status = $2,
			payment_status = $3,
			paid_at = $4,
			refunded_amount = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query,
		o.ID,
		string(o.OrderStatus),
		string(o.PaymentStatus),
		o.PaidAt,
		o.RefundedAmount.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *OrderRepository) FindCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT id, email, first_name, last_name, phone FROM customers WHERE id = $1`

	var c domain.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

func (r *OrderRepository) FindAddress(ctx context.Context, id int64) (*domain.Address, error) {
	query := `
		SELECT id, first_name, last_name, phone, address1, address2,
		       city, county, state_province, zip_postal_code, country
		FROM addresses WHERE id = $1
	`

	var a domain.Address
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Phone, &a.Address1, &a.Address2,
		&a.City, &a.County, &a.StateProvince, &a.ZipPostalCode, &a.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return &a, nil
}

func (r *OrderRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	query := `
		INSERT INTO customers (email, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.q.QueryRow(ctx, query, c.Email, c.FirstName, c.LastName, c.Phone).Scan(&c.ID); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *OrderRepository) CreateAddress(ctx context.Context, a *domain.Address) error {
	query := `
		INSERT INTO addresses (
			first_name, last_name, phone, address1, address2,
			city, county, state_province, zip_postal_code, country
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.q.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Phone, a.Address1, a.Address2,
		a.City, a.County, a.StateProvince, a.ZipPostalCode, a.Country,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var m OrderModel
	err := row.Scan(
		&m.ID, &m.CustomOrderNumber, &m.CustomerID,
		&m.BillingAddressID, &m.ShippingAddressID, &m.PickupAddressID,
		&m.OrderTotal, &m.OrderTax, &m.OrderShippingExclTax, &m.ShippingMethod,
		&m.RefundedAmount, &m.OrderStatus, &m.PaymentStatus, &m.PaidAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return toDomainOrder(m)
}
