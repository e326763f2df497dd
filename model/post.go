package model

import (
	"io"
	"time"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/utils/geo"
)

// PostEntity represents the posts table entity
type PostEntity struct {
	ID                 uint64               `db:"id"`
	Title              string               `db:"title"`
	Details            string               `db:"details"`
	Status             constant.PostStatus  `db:"status"`
	FulfilledBy        constant.FulfilledBy `db:"fulfilled_by"`
	FulfilledAt        *time.Time           `db:"fulfilled_at"`
	ComeToYou          bool                 `db:"come_to_you"`
	RequireMorePeoples bool                 `db:"require_more_peoples"`
	Latitude           *float64             `db:"latitude"`
	Longitude          *float64             `db:"longitude"`
	Location           *string              `db:"location"`
	City               *string              `db:"city"`
	Country            *string              `db:"country"`
	CreatedBy          uint64               `db:"created_by"`
	HelpBy             *uint64              `db:"help_by"`
	Distance           *float64             `db:"distance"`
	CreatedAt          time.Time            `db:"created_at"`
	UpdatedAt          time.Time            `db:"updated_at"`
}

type PostImageEntity struct {
	ID       uint64 `db:"id"`
	PostID   uint64 `db:"post_id"`
	FileName string `db:"file_name"`
	URL      string `db:"url"`
}

type TagEntity struct {
	ID    uint64 `db:"id"`
	Title string `db:"title"`
	Count int64  `db:"count"`
}

type PostHelperEntity struct {
	ID          uint64                    `db:"id"`
	PostID      uint64                    `db:"post_id"`
	RequestorID uint64                    `db:"requestor_id"`
	HelperID    uint64                    `db:"helper_id"`
	Status      constant.PostHelperStatus `db:"status"`
	Message     *string                   `db:"message"`
	CreatedAt   time.Time                 `db:"created_at"`
}

type PostHelperView struct {
	ID      uint64                    `json:"id"`
	PostID  uint64                    `json:"post_id"`
	Status  constant.PostHelperStatus `json:"status"`
	Message *string                   `json:"message"`
	Helper  UserSummary               `json:"helperUser"`
}

// PostFilter drives the post listing queries. Zero values mean "no constraint".
type PostFilter struct {
	Status            constant.PostStatus
	ExcludeStatus     constant.PostStatus
	CreatedBy         uint64
	ExcludeAuthors    []uint64
	ActiveAuthorsOnly bool
	ExcludeHelperID   uint64
	CategoryIDs       []uint64
	Geo               geo.Filter
	Page              int
	Limit             int
}

// PostDetail is a post with its eager loaded relations.
type PostDetail struct {
	Post       PostEntity
	Images     []PostImageEntity
	Categories []CategoryEntity
	Tags       []TagEntity
	Author     *UserSummary
	Reported   bool
	Helpers    []PostHelperView
}

// UploadFile is an incoming file, already opened by the transport.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile is the reference returned by the file store.
type StoredFile struct {
	Path string
	Name string
}

type FeedRequest struct {
	Categories string   `schema:"categories" validate:"omitempty,max=255"`
	Page       int      `schema:"page" validate:"omitempty,min=1"`
	Limit      int      `schema:"limit" validate:"omitempty,min=1"`
	Latitude   *float64 `schema:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `schema:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Miles      *float64 `schema:"miles" validate:"omitempty,gte=1,lte=500"`
}

type PostShowRequest struct {
	Latitude  *float64 `schema:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `schema:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type HistoryRequest struct {
	Filter string `schema:"filter" validate:"omitempty,oneof=active inactive expired canceled completed archived"`
	Page   int    `schema:"page" validate:"omitempty,min=1"`
	Limit  int    `schema:"limit" validate:"omitempty,min=1"`
}

// PostRequest is shared by create and update.
type PostRequest struct {
	Title              string       `json:"title" schema:"title" validate:"required,min=2,max=200"`
	Details            string       `json:"details" schema:"details" validate:"required,min=2,max=560"`
	Categories         []uint64     `json:"categories" schema:"categories" validate:"omitempty,min=1,dive,gt=0"`
	Tags               string       `json:"tags" schema:"tags" validate:"omitempty,max=512"`
	RequireMorePeoples *bool        `json:"require_more_peoples" schema:"require_more_peoples"`
	ComeToYou          *bool        `json:"come_to_you" schema:"come_to_you"`
	Latitude           *float64     `json:"latitude" schema:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude          *float64     `json:"longitude" schema:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Location           *string      `json:"location" schema:"location" validate:"omitempty,max=255"`
	City               *string      `json:"city" schema:"city" validate:"omitempty,max=100"`
	Country            *string      `json:"country" schema:"country" validate:"omitempty,max=100"`
	RemoveImages       string       `json:"remove_images" schema:"remove_images" validate:"omitempty,max=512"`
	Images             []UploadFile `json:"-" schema:"-"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive expired canceled completed archived"`
}

type FulfillRequest struct {
	IsH2HUser *bool   `json:"is_h2h_user" validate:"required"`
	HelpBy    *uint64 `json:"help_by" validate:"omitempty,gt=0"`
}

type OfferHelpRequest struct {
	Message string `json:"message" validate:"omitempty,max=500"`
}

type HelpStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

// PostResponse is the post view returned by every post endpoint.
type PostResponse struct {
	ID                 uint64             `json:"id"`
	Title              string             `json:"title"`
	Details            string             `json:"details"`
	Status             string             `json:"status"`
	FulfilledBy        string             `json:"fulfilled_by"`
	FulfilledAt        *time.Time         `json:"fulfilled_at"`
	ComeToYou          int                `json:"come_to_you"`
	RequireMorePeoples int                `json:"require_more_peoples"`
	Latitude           *float64           `json:"latitude"`
	Longitude          *float64           `json:"longitude"`
	Location           *string            `json:"location"`
	Distance           string             `json:"distance"`
	City               *string            `json:"city"`
	Country            *string            `json:"country"`
	CreatedBy          uint64             `json:"created_by"`
	HelpBy             *uint64            `json:"help_by"`
	Categories         []CategoryResponse `json:"categories"`
	Images             []PostImageView    `json:"images"`
	Tags               string             `json:"tags"`
	User               *UserSummary       `json:"user"`
	PostHelpers        []PostHelperView   `json:"postHelpers,omitempty"`
	IsReported         int                `json:"is_reported"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type PostImageView struct {
	ID       uint64  `json:"id"`
	PostID   uint64  `json:"post_id"`
	FileName string  `json:"file_name"`
	URL      *string `json:"url"`
}

type PostCollection struct {
	Posts []PostResponse `json:"posts"`
	Meta  PaginationMeta `json:"meta"`
}

type CreatePostResponse struct {
	ID uint64 `json:"id"`
}
