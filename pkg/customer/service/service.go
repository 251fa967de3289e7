package service

import (
	"context"

	"milkman/entities"
)

type Service interface {
	Add(ctx context.Context, name string, pricePerKg float64) (*entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}
