package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (order_number, session_id, items, subtotal, tax, shipping, grand_total, status,
			customer_name, customer_email, customer_phone, shipping_address,
			razorpay_order_id, payment_id, payment_method, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING order_id
	`
	listBySessionQuery = `
		SELECT order_id, order_number, session_id, items, subtotal, tax, shipping, grand_total, status,
			customer_name, customer_email, customer_phone, shipping_address,
			razorpay_order_id, payment_id, payment_method, created_at, updated_at
		FROM orders
		WHERE session_id = $1
		ORDER BY order_id DESC
	`
	getByNumberQuery = `
		SELECT order_id, order_number, session_id, items, subtotal, tax, shipping, grand_total, status,
			customer_name, customer_email, customer_phone, shipping_address,
			razorpay_order_id, payment_id, payment_method, created_at, updated_at
		FROM orders
		WHERE order_number = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	err = r.db.QueryRow(insertOrderQuery,
		ord.OrderNumber, ord.SessionID, items,
		ord.Subtotal, ord.Tax, ord.Shipping, ord.GrandTotal, ord.Status,
		ord.CustomerName, ord.CustomerEmail, ord.CustomerPhone, ord.ShippingAddress,
		ord.RazorpayOrderID, ord.PaymentID, ord.PaymentMethod,
		ord.CreatedAt, ord.UpdatedAt,
	).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord      Order
		rawItems []byte
		email    sql.NullString
		rzpOrder sql.NullString
		payID    sql.NullString
		method   sql.NullString
	)
	err := row.Scan(&ord.OrderID, &ord.OrderNumber, &ord.SessionID, &rawItems,
		&ord.Subtotal, &ord.Tax, &ord.Shipping, &ord.GrandTotal, &ord.Status,
		&ord.CustomerName, &email, &ord.CustomerPhone, &ord.ShippingAddress,
		&rzpOrder, &payID, &method, &ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	if len(rawItems) > 0 {
		if err := json.Unmarshal(rawItems, &ord.Items); err != nil {
			return Order{}, err
		}
	}
	ord.CustomerEmail = email.String
	ord.RazorpayOrderID = rzpOrder.String
	ord.PaymentID = payID.String
	ord.PaymentMethod = method.String
	return ord, nil
}

func (r *PostgresRepository) ListBySession(sessionID string) ([]Order, error) {
	rows, err := r.db.Query(listBySessionQuery, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, nil
}

func (r *PostgresRepository) GetByNumber(orderNumber string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getByNumberQuery, orderNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}
