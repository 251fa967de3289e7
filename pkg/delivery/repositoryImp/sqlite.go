package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"milkman/entities"
	"milkman/pkg/delivery/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, d *entities.Delivery) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// ListByCustomer returns newest dates first; same-day rows keep insertion
// order.
func (r *sqliteRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entities.Delivery, error) {
	var list []entities.Delivery
	return list, r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date desc, id asc").
		Find(&list).Error
}
