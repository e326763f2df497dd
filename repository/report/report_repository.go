package report

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

type ReportRepository interface {
	HasPendingUserReport(ctx context.Context, createdBy, userID uint64) (bool, error)
	CreateUserReport(ctx context.Context, data *model.UserReportEntity) (uint64, error)
	HasPendingPostReport(ctx context.Context, createdBy, postID uint64) (bool, error)
	CreatePostReport(ctx context.Context, data *model.PostReportEntity) (uint64, error)
}

func NewReportRepository(conn *sqlx.DB) ReportRepository {
	return &SQL{conn: conn}
}

const (
	pendingUserReportQuery = `SELECT EXISTS (SELECT 1 FROM user_reports WHERE created_by = ? AND user_id = ? AND status = ?)`
	insertUserReportQuery  = `INSERT INTO user_reports (user_id, created_by, reason, comment, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
	pendingPostReportQuery = `SELECT EXISTS (SELECT 1 FROM post_reports WHERE created_by = ? AND post_id = ? AND status = ?)`
	insertPostReportQuery  = `INSERT INTO post_reports (post_id, created_by, reason, comment, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
)

func (s *SQL) HasPendingUserReport(ctx context.Context, createdBy, userID uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, pendingUserReportQuery, createdBy, userID, constant.ReportStatusPending); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateUserReport returns repository.ErrDuplicate when the reporter already has a
// pending report on the user (uq_user_reports_pending).
func (s *SQL) CreateUserReport(ctx context.Context, data *model.UserReportEntity) (uint64, error) {
	if data.Status == "" {
		data.Status = constant.ReportStatusPending
	}
	result, err := s.conn.ExecContext(ctx, insertUserReportQuery, data.UserID, data.CreatedBy, data.Reason, data.Comment, data.Status)
	return insertedID(result, err)
}

func (s *SQL) HasPendingPostReport(ctx context.Context, createdBy, postID uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, pendingPostReportQuery, createdBy, postID, constant.ReportStatusPending); err != nil {
		return false, err
	}
	return exists, nil
}

// CreatePostReport returns repository.ErrDuplicate when the reporter already has a
// pending report on the post (uq_post_reports_pending).
func (s *SQL) CreatePostReport(ctx context.Context, data *model.PostReportEntity) (uint64, error) {
	if data.Status == "" {
		data.Status = constant.ReportStatusPending
	}
	result, err := s.conn.ExecContext(ctx, insertPostReportQuery, data.PostID, data.CreatedBy, data.Reason, data.Comment, data.Status)
	return insertedID(result, err)
}

func insertedID(result sql.Result, err error) (uint64, error) {
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
