package serviceImp

import (
	"context"
	"math"
	"strings"

	"milkman/entities"
	"milkman/pkg/apperr"
	"milkman/pkg/customer/repository"
	svc "milkman/pkg/customer/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) Add(ctx context.Context, name string, pricePerKg float64) (*entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if math.IsNaN(pricePerKg) || math.IsInf(pricePerKg, 0) || pricePerKg <= 0 {
		return nil, apperr.Validation("price_per_kg must be greater than 0")
	}
	c := &entities.Customer{Name: name, PricePerKg: pricePerKg}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.Store("insert customer", err)
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]entities.Customer, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("list customers", err)
	}
	if list == nil {
		list = []entities.Customer{}
	}
	return list, nil
}

func (s *service) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("no customer ids provided")
	}
	for _, id := range ids {
		if id == 0 {
			return 0, apperr.Validation("customer ids must be positive integers")
		}
	}
	n, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Store("delete customers", err)
	}
	return n, nil
}
