package helper

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
)

type SQL struct {
	conn *sqlx.DB
}

// HelperRepository stores help offers (post_helpers).
type HelperRepository interface {
	Create(ctx context.Context, data *model.PostHelperEntity) (uint64, error)
	Get(ctx context.Context, postID, helperID uint64) (*model.PostHelperEntity, error)
	GetMatchTx(ctx context.Context, tx *sqlx.Tx, postID, requestorID, helperID uint64) (*model.PostHelperEntity, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.PostHelperStatus) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PostHelperStatus) error
}

func NewHelperRepository(conn *sqlx.DB) HelperRepository {
	return &SQL{conn: conn}
}

const (
	helperColumns     = `id, post_id, requestor_id, helper_id, status, message, created_at`
	insertHelperQuery = `INSERT INTO post_helpers (post_id, requestor_id, helper_id, status, message, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
	getHelperQuery      = `SELECT ` + helperColumns + ` FROM post_helpers WHERE post_id = ? AND helper_id = ?`
	getHelperMatchQuery = `SELECT ` + helperColumns + ` FROM post_helpers
WHERE post_id = ? AND requestor_id = ? AND helper_id = ? FOR UPDATE`
	updateHelperStatusQuery = `UPDATE post_helpers SET status = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.PostHelperEntity) (uint64, error) {
	if data.Status == "" {
		data.Status = constant.PostHelperStatusPending
	}

	result, err := s.conn.ExecContext(ctx, insertHelperQuery, data.PostID, data.RequestorID, data.HelperID, data.Status, data.Message)
	if err != nil {
		if repository.IsDuplicate(err) {
			return 0, repository.ErrDuplicate
		}
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Get(ctx context.Context, postID, helperID uint64) (*model.PostHelperEntity, error) {
	var entity model.PostHelperEntity
	if err := s.conn.QueryRowxContext(ctx, getHelperQuery, postID, helperID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetMatchTx locks the offer made by helperID on requestorID's post.
func (s *SQL) GetMatchTx(ctx context.Context, tx *sqlx.Tx, postID, requestorID, helperID uint64) (*model.PostHelperEntity, error) {
	var entity model.PostHelperEntity
	if err := tx.QueryRowxContext(ctx, getHelperMatchQuery, postID, requestorID, helperID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.PostHelperStatus) error {
	_, err := s.conn.ExecContext(ctx, updateHelperStatusQuery, status, id)
	return err
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PostHelperStatus) error {
	_, err := tx.ExecContext(ctx, updateHelperStatusQuery, status, id)
	return err
}
