package entities

// Delivery is one day's quantity for a customer. CustomerID is not a
// foreign key: rows may outlive the customer they point to.
type Delivery struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"index:idx_deliveries_customer_date,priority:1" json:"customer_id"`
	Date       string  `gorm:"type:text;index:idx_deliveries_customer_date,priority:2" json:"date"` // YYYY-MM-DD
	Quantity   float64 `json:"quantity"`                                                          // liters
}

func (Delivery) TableName() string { return "deliveries" }
