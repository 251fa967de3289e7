package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"milkman/entities"
	"milkman/pkg/summary/repository"
)

// Inner join: customers without deliveries in range produce no row, and
// deliveries pointing at deleted customers are ignored.
const monthlyTotalsSQL = `
SELECT c.id AS customer_id,
       c.name AS name,
       c.price_per_kg AS price_per_kg,
       SUM(d.quantity) AS total_quantity
FROM customers c
JOIN deliveries d ON d.customer_id = c.id
WHERE d.date BETWEEN ? AND ?
GROUP BY c.id, c.name, c.price_per_kg
ORDER BY c.name ASC, c.id ASC
`

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) MonthlyTotals(ctx context.Context, from, to string) ([]entities.SummaryRow, error) {
	var rows []entities.SummaryRow
	return rows, r.db.WithContext(ctx).Raw(monthlyTotalsSQL, from, to).Scan(&rows).Error
}
