package order

import (
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/order"
)

// Stats summarizes an order collection for the portal's stat tiles
type Stats struct {
	Total     int64                  `json:"total"`
	ByStatus  map[order.Status]int64 `json:"by_status"`
	Revenue   decimal.Decimal        `json:"revenue"`
	ItemCount int64                  `json:"item_count"`
}

// Summarize computes collection statistics in a single pass. The input
// is never mutated, and an empty or nil input yields zero values with
// every status present in ByStatus.
func Summarize(records []OrderView) Stats {
	stats := Stats{
		ByStatus: make(map[order.Status]int64, len(order.AllStatuses())),
		Revenue:  decimal.Zero,
	}
	for _, status := range order.AllStatuses() {
		stats.ByStatus[status] = 0
	}

	for _, record := range records {
		stats.Total++
		stats.ByStatus[record.Status]++
		stats.Revenue = stats.Revenue.Add(record.TotalAmount)
		stats.ItemCount += record.ItemCount
	}
	return stats
}
