package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/order"
)

// OrderView is one row of the portal's order table: the order joined
// with its customer and the count of its line items.
type OrderView struct {
	ID               string          `json:"id"`
	Reference        string          `json:"reference"`
	Status           order.Status    `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ItemCount        int64           `json:"item_count"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	CustomerInitials string          `json:"customer_initials"`
	CreatedAt        time.Time       `json:"created_at"`
}

// NewOrderView builds a view row from a loaded order and its item count
func NewOrderView(o *order.Order, itemCount int64) OrderView {
	return OrderView{
		ID:               o.ID.String(),
		Reference:        o.Reference(),
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		ItemCount:        itemCount,
		CustomerName:     o.Customer.DisplayName(),
		CustomerEmail:    customerEmail(o),
		CustomerInitials: o.Customer.Initials(),
		CreatedAt:        o.CreatedAt,
	}
}

func customerEmail(o *order.Order) string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.Email
}

// DetailView is a single order with its line items, for the detail pane
type DetailView struct {
	OrderView
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Items          []ItemView      `json:"items"`
}

// ItemView is one order line in the detail pane
type ItemView struct {
	ID        string          `json:"id"`
	VariantID string          `json:"variant_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
