package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"milkman/entities"
	"milkman/pkg/customer/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(ctx context.Context, c *entities.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *sqliteRepo) List(ctx context.Context) ([]entities.Customer, error) {
	var list []entities.Customer
	return list, r.db.WithContext(ctx).Order("id asc").Find(&list).Error
}

// DeleteByIDs removes the customers that exist among ids and reports how
// many rows went away. Their deliveries are left in place.
func (r *sqliteRepo) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&entities.Customer{})
	return res.RowsAffected, res.Error
}
