package model

import "time"

type CategoryEntity struct {
	ID        uint64    `db:"id"`
	Title     string    `db:"title"`
	Icon      *string   `db:"icon"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type CategoryResponse struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Icon     *string `json:"icon"`
	IsActive int     `json:"is_active"`
}

type AssignCategoriesRequest struct {
	Categories []uint64 `json:"categories" validate:"required,min=1,dive,gt=0"`
}
