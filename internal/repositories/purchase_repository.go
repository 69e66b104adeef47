package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"gamestoreBack/internal/models"
)

// ErrAlreadyOwned is reported when the UNIQUE (user_id, item_id) constraint
// rejects a batch line. Validation runs before submit, but ownership can
// change between the two; the constraint is the backstop that turns that race
// into a clean failure instead of a duplicate purchase.
var ErrAlreadyOwned = errors.New("item already owned")

const mysqlDuplicateEntry = 1062

// PurchaseRepository stores the append-only purchase ledger. Rows are never
// updated or deleted.
type PurchaseRepository struct {
	DB *sql.DB
}

func (r *PurchaseRepository) ListByUserID(ctx context.Context, userID int) ([]models.Purchase, error) {
	query := `SELECT id, user_id, item_id, final_price, purchased_at
	          FROM purchases WHERE user_id = ? ORDER BY purchased_at, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.FinalPrice, &p.PurchasedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchases rows error: %w", err)
	}
	return purchases, nil
}

// SubmitBatch appends one row per order inside a single transaction. The
// batch is all-or-nothing: any failed line rolls back every other line.
func (r *PurchaseRepository) SubmitBatch(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO purchases (id, user_id, item_id, final_price, purchased_at)
	          VALUES (?, ?, ?, ?, ?)`
	for _, o := range orders {
		if _, err := tx.ExecContext(ctx, query, o.ID, o.UserID, o.ItemID, o.FinalPrice, o.PurchasedAt); err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
				return fmt.Errorf("%w: item %s", ErrAlreadyOwned, o.ItemID)
			}
			return err
		}
	}
	return tx.Commit()
}
