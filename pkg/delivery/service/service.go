package service

import (
	"context"

	"milkman/entities"
)

const DateLayout = "2006-01-02"

type Service interface {
	Record(ctx context.Context, customerID uint, date string, quantity float64) (*entities.Delivery, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]entities.Delivery, error)
}
