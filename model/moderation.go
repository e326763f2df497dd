package model

import (
	"time"

	"github.com/muhammadheryan/heart2help/constant"
)

// UserBlockEntity is a directed block: CreatedBy blocked UserID.
type UserBlockEntity struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	CreatedBy uint64    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type BlockedUser struct {
	ID        uint64      `json:"id"`
	UserID    uint64      `json:"user_id"`
	CreatedBy uint64      `json:"created_by"`
	User      UserSummary `json:"users"`
}

type BlockListResponse struct {
	Users []BlockedUser `json:"users"`
}

type UserReportEntity struct {
	ID        uint64                `db:"id"`
	UserID    uint64                `db:"user_id"`
	CreatedBy uint64                `db:"created_by"`
	Reason    string                `db:"reason"`
	Comment   *string               `db:"comment"`
	Status    constant.ReportStatus `db:"status"`
	CreatedAt time.Time             `db:"created_at"`
}

type PostReportEntity struct {
	ID        uint64                `db:"id"`
	PostID    uint64                `db:"post_id"`
	CreatedBy uint64                `db:"created_by"`
	Reason    string                `db:"reason"`
	Comment   *string               `db:"comment"`
	Status    constant.ReportStatus `db:"status"`
	CreatedAt time.Time             `db:"created_at"`
}

type ReportRequest struct {
	Reason  []string `json:"reason" validate:"required,min=1,dive,required,max=255"`
	Comment string   `json:"comment" validate:"omitempty,max=500"`
}

type UserFeedbackEntity struct {
	ID         uint64    `db:"id"`
	PostID     uint64    `db:"post_id"`
	UserID     uint64    `db:"user_id"`
	CreatedBy  uint64    `db:"created_by"`
	IsPositive bool      `db:"is_positive"`
	Type       *string   `db:"type"`
	Reason     *string   `db:"reason"`
	CreatedAt  time.Time `db:"created_at"`
}

type FeedbackRequest struct {
	UserID     uint64   `json:"user_id" validate:"required,gt=0"`
	IsPositive *bool    `json:"is_positive" validate:"required"`
	Type       []string `json:"type" validate:"omitempty,dive,required,max=100"`
	Reason     string   `json:"reason" validate:"omitempty,max=500"`
}
