package feedback

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
)

type SQL struct {
	conn *sqlx.DB
}

type FeedbackRepository interface {
	Exists(ctx context.Context, createdBy, postID uint64) (bool, error)
	Create(ctx context.Context, data *model.UserFeedbackEntity) (uint64, error)
}

func NewFeedbackRepository(conn *sqlx.DB) FeedbackRepository {
	return &SQL{conn: conn}
}

const (
	feedbackExistsQuery = `SELECT EXISTS (SELECT 1 FROM user_feedbacks WHERE created_by = ? AND post_id = ?)`
	insertFeedbackQuery = `INSERT INTO user_feedbacks (post_id, user_id, created_by, is_positive, type, reason, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`
)

func (s *SQL) Exists(ctx context.Context, createdBy, postID uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, feedbackExistsQuery, createdBy, postID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) Create(ctx context.Context, data *model.UserFeedbackEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertFeedbackQuery, data.PostID, data.UserID, data.CreatedBy, data.IsPositive, data.Type, data.Reason)
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
