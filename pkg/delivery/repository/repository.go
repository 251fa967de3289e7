package repository

import (
	"context"

	"milkman/entities"
)

type Repo interface {
	Create(ctx context.Context, d *entities.Delivery) error
	ListByCustomer(ctx context.Context, customerID uint) ([]entities.Delivery, error)
}
