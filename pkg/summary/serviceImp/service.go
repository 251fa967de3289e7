package serviceImp

import (
	"context"

	"github.com/shopspring/decimal"

	"milkman/entities"
	"milkman/pkg/apperr"
	"milkman/pkg/summary"
	"milkman/pkg/summary/repository"
	svc "milkman/pkg/summary/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) Monthly(ctx context.Context, month string) ([]entities.SummaryRow, error) {
	m, err := summary.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.MonthlyTotals(ctx, m.First, m.Last)
	if err != nil {
		return nil, apperr.Store("query monthly summary", err)
	}
	if rows == nil {
		rows = []entities.SummaryRow{}
	}
	for i := range rows {
		rows[i].TotalAmount = Amount(rows[i].TotalQuantity, rows[i].PricePerKg)
	}
	return rows, nil
}

// Amount multiplies in decimal so that e.g. 0.1 L at 3.0 bills 0.3, not
// 0.30000000000000004.
func Amount(quantity, pricePerKg float64) float64 {
	v, _ := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(pricePerKg)).Float64()
	return v
}
