package serviceImp

import (
	"context"
	"math"
	"strings"
	"time"

	"milkman/entities"
	"milkman/pkg/apperr"
	"milkman/pkg/delivery/repository"
	svc "milkman/pkg/delivery/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

// Record stores a delivery without checking that the customer exists.
func (s *service) Record(ctx context.Context, customerID uint, date string, quantity float64) (*entities.Delivery, error) {
	if customerID == 0 {
		return nil, apperr.Validation("customer_id is required")
	}
	date = strings.TrimSpace(date)
	if _, err := time.Parse(svc.DateLayout, date); err != nil {
		return nil, apperr.Validation("date must be a date in YYYY-MM-DD form")
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return nil, apperr.Validation("quantity must be a non-negative number")
	}
	d := &entities.Delivery{CustomerID: customerID, Date: date, Quantity: quantity}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Store("insert delivery", err)
	}
	return d, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]entities.Delivery, error) {
	if customerID == 0 {
		return nil, apperr.Validation("customer id must be a positive integer")
	}
	list, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperr.Store("list deliveries", err)
	}
	if list == nil {
		list = []entities.Delivery{}
	}
	return list, nil
}
