package repository

import (
	"context"

	"milkman/entities"
)

type Repo interface {
	Create(ctx context.Context, c *entities.Customer) error
	List(ctx context.Context) ([]entities.Customer, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}
