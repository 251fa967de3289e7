package repository

import (
	"context"

	"milkman/entities"
)

type Repo interface {
	// MonthlyTotals sums quantities per customer for deliveries dated in
	// [from, to]. TotalAmount is left for the caller.
	MonthlyTotals(ctx context.Context, from, to string) ([]entities.SummaryRow, error)
}
