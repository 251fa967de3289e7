package entities

type Customer struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	PricePerKg float64 `gorm:"column:price_per_kg;not null" json:"price_per_kg"`
}

func (Customer) TableName() string { return "customers" }
