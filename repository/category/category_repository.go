package category

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.CategoryEntity, error)
	CountExisting(ctx context.Context, ids []uint64) (int, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.CategoryEntity, error)
	ReplaceUserCategoriesTx(ctx context.Context, tx *sqlx.Tx, userID uint64, ids []uint64) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	listActiveCategoriesQuery = `SELECT id, title, icon, is_active, created_at FROM categories WHERE is_active = true ORDER BY title`
	countCategoriesQuery      = `SELECT COUNT(*) FROM categories WHERE id IN (?)`
	listUserCategoriesQuery   = `SELECT c.id, c.title, c.icon, c.is_active, c.created_at
FROM categories c JOIN user_categories uc ON uc.category_id = c.id
WHERE uc.user_id = ? AND c.is_active = true ORDER BY c.title`
	deleteUserCategoriesQuery = `DELETE FROM user_categories WHERE user_id = ?`
	insertUserCategoryQuery   = `INSERT INTO user_categories (user_id, category_id, created_at, updated_at) VALUES (?, ?, NOW(), NOW())`
)

func (s *SQL) ListActive(ctx context.Context) ([]model.CategoryEntity, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listActiveCategoriesQuery); err != nil {
		return nil, err
	}
	return items, nil
}

// CountExisting returns how many of ids reference a category row.
func (s *SQL) CountExisting(ctx context.Context, ids []uint64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(countCategoriesQuery, ids)
	if err != nil {
		return 0, err
	}

	var total int
	if err := s.conn.GetContext(ctx, &total, s.conn.Rebind(query), args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.CategoryEntity, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listUserCategoriesQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ReplaceUserCategoriesTx(ctx context.Context, tx *sqlx.Tx, userID uint64, ids []uint64) error {
	if _, err := tx.ExecContext(ctx, deleteUserCategoriesQuery, userID); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, insertUserCategoryQuery, userID, id); err != nil {
			return err
		}
	}
	return nil
}
