package models

type BusinessType string

const (
	BusinessClothing   BusinessType = "CLOTHING"
	BusinessPrinting3D BusinessType = "PRINTING_3D"
)

// OrderStatus is the six-stage order kanban.
type OrderStatus string

const (
	OrderNew       OrderStatus = "NEW"
	OrderDesigning OrderStatus = "DESIGNING"
	OrderPrinting  OrderStatus = "PRINTING"
	OrderPacking   OrderStatus = "PACKING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
)

type BusinessOrder struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	CustomerName  string        `json:"customer_name"`
	BusinessType  BusinessType  `json:"business_type"`
	OrderStatus   OrderStatus   `json:"order_status"`
	OrderDate     string        `json:"order_date,omitempty"`    // YYYY-MM-DD
	DeliveryDate  string        `json:"delivery_date,omitempty"` // YYYY-MM-DD
	Amount        float64       `json:"amount"`
	Cost          float64       `json:"cost"`
	Profit        float64       `json:"profit"` // stored redundantly, derived from amount-cost
	PaymentStatus PaymentStatus `json:"payment_status"`
	HandledBy     Role          `json:"handled_by"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}
