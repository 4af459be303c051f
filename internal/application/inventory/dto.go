package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/inventory"
)

// ItemView is one row of the portal's inventory table: the stock row
// joined with its variant and product.
type ItemView struct {
	ID               string                `json:"id"`
	ProductName      string                `json:"product_name"`
	Category         string                `json:"category"`
	SKU              string                `json:"sku"`
	Price            decimal.Decimal       `json:"price"`
	Quantity         int64                 `json:"quantity"`
	ReservedQuantity int64                 `json:"reserved_quantity"`
	AvailableStock   int64                 `json:"available_stock"`
	Status           inventory.StockStatus `json:"status"`
	Value            decimal.Decimal       `json:"value"`
}

// NewItemView builds a view row from a loaded inventory item
func NewItemView(item *inventory.Item, threshold int64) ItemView {
	view := ItemView{
		ID:               item.ID.String(),
		Quantity:         item.Quantity,
		ReservedQuantity: item.ReservedQuantity,
		AvailableStock:   item.AvailableStock(),
		Status:           item.StockStatus(threshold),
		Price:            decimal.Zero,
		Value:            decimal.Zero,
	}
	if item.Variant != nil {
		view.SKU = item.Variant.SKU
		view.Price = item.Variant.Price
		view.Value = item.Variant.Price.Mul(decimal.NewFromInt(item.Quantity))
		if item.Variant.Product != nil {
			view.ProductName = item.Variant.Product.Name
			view.Category = item.Variant.Product.Category
		}
	}
	return view
}

// Stats summarizes the whole inventory for the portal's stat tiles
type Stats struct {
	TotalUnits    int64           `json:"total_units"`
	LowStockCount int64           `json:"low_stock_count"`
	OutOfStock    int64           `json:"out_of_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// AdjustInput carries one stock adjustment request
type AdjustInput struct {
	Mode   inventory.AdjustmentMode `json:"mode" binding:"required,adjustmode"`
	Amount int64                    `json:"amount" binding:"required"`
}
