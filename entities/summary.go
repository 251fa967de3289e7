package entities

// SummaryRow is the monthly aggregate for one customer. It is derived by
// the summary query and never persisted.
type SummaryRow struct {
	CustomerID    uint    `gorm:"column:customer_id" json:"customer_id"`
	Name          string  `gorm:"column:name" json:"name"`
	PricePerKg    float64 `gorm:"column:price_per_kg" json:"price_per_kg"`
	TotalQuantity float64 `gorm:"column:total_quantity" json:"total_quantity"`
	TotalAmount   float64 `gorm:"-" json:"total_amount"`
}
