package postgres

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const orderCols = `id, user_id, customer_name, business_type, order_status, order_date,
delivery_date, amount, cost, profit, payment_status, handled_by, notes, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (models.BusinessOrder, error) {
	var o models.BusinessOrder
	var btype, ostatus, pstatus, handler string
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &btype, &ostatus, &o.OrderDate,
		&o.DeliveryDate, &o.Amount, &o.Cost, &o.Profit, &pstatus, &handler,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.BusinessOrder{}, err
	}
	o.BusinessType = models.BusinessType(btype)
	o.OrderStatus = models.OrderStatus(ostatus)
	o.PaymentStatus = models.PaymentStatus(pstatus)
	o.HandledBy = models.Role(handler)
	return o, nil
}

func (s *Store) ListOrders(userID string) ([]models.BusinessOrder, error) {
	rows, err := s.db.Query(`SELECT `+orderCols+` FROM business_orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.BusinessOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) GetOrder(id string) (models.BusinessOrder, error) {
	o, err := scanOrder(s.db.QueryRow(`SELECT `+orderCols+` FROM business_orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BusinessOrder{}, storage.NotFound("business order", id)
	}
	return o, err
}

func (s *Store) AddOrder(o models.BusinessOrder) error {
	_, err := s.db.Exec(`
INSERT INTO business_orders (`+orderCols+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		o.ID, o.UserID, o.CustomerName, o.BusinessType, o.OrderStatus, o.OrderDate,
		o.DeliveryDate, o.Amount, o.Cost, o.Profit, o.PaymentStatus, o.HandledBy,
		o.Notes, o.CreatedAt, o.UpdatedAt)
	return err
}

func (s *Store) UpdateOrder(o models.BusinessOrder) error {
	res, err := s.db.Exec(`
UPDATE business_orders SET
customer_name = $1, business_type = $2, order_status = $3, order_date = $4,
delivery_date = $5, amount = $6, cost = $7, profit = $8, payment_status = $9,
handled_by = $10, notes = $11, updated_at = $12
WHERE id = $13`,
		o.CustomerName, o.BusinessType, o.OrderStatus, o.OrderDate, o.DeliveryDate,
		o.Amount, o.Cost, o.Profit, o.PaymentStatus, o.HandledBy, o.Notes,
		o.UpdatedAt, o.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "business order", o.ID)
}

func (s *Store) DeleteOrder(id string) error {
	res, err := s.db.Exec(`DELETE FROM business_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "business order", id)
}
