package block

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/model"
)

type SQL struct {
	conn *sqlx.DB
}

// BlockRepository stores directed blocks: created_by has blocked user_id.
type BlockRepository interface {
	// Create returns false when the block already existed.
	Create(ctx context.Context, createdBy, userID uint64) (bool, error)
	// Delete returns false when there was nothing to remove.
	Delete(ctx context.Context, createdBy, userID uint64) (bool, error)
	ListBlockedIDs(ctx context.Context, createdBy uint64) ([]uint64, error)
	ListWithUsers(ctx context.Context, createdBy uint64) ([]model.BlockedUser, error)
	IsBlocked(ctx context.Context, createdBy, userID uint64) (bool, error)
}

func NewBlockRepository(conn *sqlx.DB) BlockRepository {
	return &SQL{conn: conn}
}

const (
	insertBlockQuery     = `INSERT IGNORE INTO user_blocks (user_id, created_by, created_at, updated_at) VALUES (?, ?, NOW(), NOW())`
	deleteBlockQuery     = `DELETE FROM user_blocks WHERE created_by = ? AND user_id = ?`
	listBlockedIDsQuery  = `SELECT user_id FROM user_blocks WHERE created_by = ?`
	isBlockedQuery       = `SELECT EXISTS (SELECT 1 FROM user_blocks WHERE created_by = ? AND user_id = ?)`
	listBlockedUserQuery = `SELECT ub.id, ub.user_id, ub.created_by,
u.id AS "users.id", u.first_name AS "users.first_name", u.last_name AS "users.last_name",
u.email AS "users.email", u.profile_picture AS "users.profile_picture", u.status AS "users.status", u.type AS "users.type"
FROM user_blocks ub JOIN users u ON u.id = ub.user_id
WHERE ub.created_by = ? ORDER BY ub.id DESC`
)

type blockedUserRow struct {
	ID        uint64            `db:"id"`
	UserID    uint64            `db:"user_id"`
	CreatedBy uint64            `db:"created_by"`
	User      model.UserSummary `db:"users"`
}

func (s *SQL) Create(ctx context.Context, createdBy, userID uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, insertBlockQuery, userID, createdBy)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) Delete(ctx context.Context, createdBy, userID uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteBlockQuery, createdBy, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ListBlockedIDs(ctx context.Context, createdBy uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := s.conn.SelectContext(ctx, &ids, listBlockedIDsQuery, createdBy); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQL) ListWithUsers(ctx context.Context, createdBy uint64) ([]model.BlockedUser, error) {
	var rows []blockedUserRow
	if err := s.conn.SelectContext(ctx, &rows, listBlockedUserQuery, createdBy); err != nil {
		return nil, err
	}

	users := make([]model.BlockedUser, 0, len(rows))
	for _, r := range rows {
		users = append(users, model.BlockedUser{
			ID:        r.ID,
			UserID:    r.UserID,
			CreatedBy: r.CreatedBy,
			User:      r.User,
		})
	}
	return users, nil
}

func (s *SQL) IsBlocked(ctx context.Context, createdBy, userID uint64) (bool, error) {
	var blocked bool
	if err := s.conn.GetContext(ctx, &blocked, isBlockedQuery, createdBy, userID); err != nil {
		return false, err
	}
	return blocked, nil
}
