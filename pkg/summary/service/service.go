package service

import (
	"context"

	"milkman/entities"
)

type Service interface {
	// Monthly returns one row per customer with deliveries in the month,
	// sorted by name then customer id.
	Monthly(ctx context.Context, month string) ([]entities.SummaryRow, error)
}
