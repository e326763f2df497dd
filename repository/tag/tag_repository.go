package tag

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TagRepository interface {
	// IncrementTx creates missing titles and bumps the use counter of each one.
	IncrementTx(ctx context.Context, tx *sqlx.Tx, titles []string) error
	FindByTitlesTx(ctx context.Context, tx *sqlx.Tx, titles []string) ([]model.TagEntity, error)
}

func NewTagRepository(conn *sqlx.DB) TagRepository {
	return &SQL{conn: conn}
}

const (
	upsertTagQuery = `INSERT INTO tags (title, count, created_at, updated_at) VALUES (?, 1, NOW(), NOW())
ON DUPLICATE KEY UPDATE count = count + 1, updated_at = NOW()`
	selectTagsQuery = `SELECT id, title, count FROM tags WHERE title IN (?) ORDER BY id`
)

func (s *SQL) IncrementTx(ctx context.Context, tx *sqlx.Tx, titles []string) error {
	for _, title := range titles {
		if _, err := tx.ExecContext(ctx, upsertTagQuery, title); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) FindByTitlesTx(ctx context.Context, tx *sqlx.Tx, titles []string) ([]model.TagEntity, error) {
	tags := make([]model.TagEntity, 0, len(titles))
	if len(titles) == 0 {
		return tags, nil
	}

	query, args, err := sqlx.In(selectTagsQuery, titles)
	if err != nil {
		return nil, err
	}
	if err := tx.SelectContext(ctx, &tags, tx.Rebind(query), args...); err != nil {
		return nil, err
	}
	return tags, nil
}
