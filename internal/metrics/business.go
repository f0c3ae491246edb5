package metrics

import (
	"time"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// Profit is the margin on a single order.
func Profit(o models.BusinessOrder) float64 {
	return o.Amount - o.Cost
}

// MonthlyProfit sums profit over orders whose order date falls in the
// same local month and year as ref. Orders without an order date are
// skipped.
func MonthlyProfit(orders []models.BusinessOrder, ref time.Time) float64 {
	total := 0.0
	for _, o := range orders {
		if o.OrderDate == "" {
			continue
		}
		if utils.SameMonth(o.OrderDate, ref) {
			total += Profit(o)
		}
	}
	return total
}

// PendingPayments sums the order amount over orders that have not been
// fully paid.
func PendingPayments(orders []models.BusinessOrder) float64 {
	total := 0.0
	for _, o := range orders {
		if o.PaymentStatus != models.PaymentPaid {
			total += o.Amount
		}
	}
	return total
}
