package post

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/geo"
)

type SQL struct {
	conn *sqlx.DB
}

type PostRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.PostEntity) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.PostEntity) error
	Get(ctx context.Context, id uint64, filter geo.Filter) (*model.PostEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PostEntity, error)
	List(ctx context.Context, filter *model.PostFilter) ([]model.PostEntity, int64, error)
	// UpdateStatusTx moves the post from one status to another and reports
	// false when the row no longer holds the expected status.
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.PostStatus) (bool, error)
	FulfillTx(ctx context.Context, tx *sqlx.Tx, id uint64, by constant.FulfilledBy, helpBy *uint64, at time.Time) error
	Delete(ctx context.Context, id uint64) error

	ReplaceCategoriesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, categoryIDs []uint64) error
	ReplaceTagsTx(ctx context.Context, tx *sqlx.Tx, postID uint64, tagIDs []uint64) error
	ListTagTitlesTx(ctx context.Context, tx *sqlx.Tx, postID uint64) ([]string, error)
	InsertImagesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, images []model.PostImageEntity) error
	DeleteImagesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, imageIDs []uint64) error

	// Preload attaches the requested relations to posts in one query per relation.
	Preload(ctx context.Context, posts []model.PostEntity, rel constant.PostRelation, viewerID uint64) ([]model.PostDetail, error)
}

func NewPostRepository(conn *sqlx.DB) PostRepository {
	return &SQL{conn: conn}
}

const (
	postColumns = `p.id, p.title, p.details, p.status, p.fulfilled_by, p.fulfilled_at, p.come_to_you, p.require_more_peoples,
p.latitude, p.longitude, p.location, p.city, p.country, p.created_by, p.help_by, p.created_at, p.updated_at`

	insertPostQuery = `INSERT INTO posts (title, details, status, fulfilled_by, come_to_you, require_more_peoples,
latitude, longitude, location, city, country, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`
	updatePostQuery = `UPDATE posts SET title = ?, details = ?, come_to_you = ?, require_more_peoples = ?,
latitude = ?, longitude = ?, location = ?, city = ?, country = ?, updated_at = NOW() WHERE id = ?`
	getPostForUpdateQuery = `SELECT ` + postColumns + `, NULL AS distance FROM posts p WHERE p.id = ? FOR UPDATE`
	updateStatusQuery     = `UPDATE posts SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`
	fulfillPostQuery      = `UPDATE posts SET status = ?, fulfilled_by = ?, help_by = ?, fulfilled_at = ?, updated_at = NOW() WHERE id = ?`
	deletePostQuery       = `DELETE FROM posts WHERE id = ?`

	deletePostCategoriesQuery = `DELETE FROM post_categories WHERE post_id = ?`
	insertPostCategoryQuery   = `INSERT INTO post_categories (post_id, category_id, created_at) VALUES (?, ?, NOW())`
	deletePostTagsQuery       = `DELETE FROM post_tags WHERE post_id = ?`
	insertPostTagQuery        = `INSERT INTO post_tags (post_id, tag_id, created_at) VALUES (?, ?, NOW())`
	listPostTagTitlesQuery    = `SELECT t.title FROM post_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.post_id = ? ORDER BY t.id`
	insertPostImageQuery      = `INSERT INTO post_images (post_id, file_name, url, created_at) VALUES (?, ?, ?, NOW())`
	deletePostImagesQuery     = `DELETE FROM post_images WHERE post_id = ? AND id IN (?)`
)

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.PostEntity) (uint64, error) {
	if data.Status == "" {
		data.Status = constant.PostStatusActive
	}
	if data.FulfilledBy == "" {
		data.FulfilledBy = constant.FulfilledByPending
	}

	result, err := tx.ExecContext(ctx, insertPostQuery,
		data.Title, data.Details, data.Status, data.FulfilledBy, data.ComeToYou, data.RequireMorePeoples,
		data.Latitude, data.Longitude, data.Location, data.City, data.Country, data.CreatedBy,
	)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.PostEntity) error {
	_, err := tx.ExecContext(ctx, updatePostQuery,
		data.Title, data.Details, data.ComeToYou, data.RequireMorePeoples,
		data.Latitude, data.Longitude, data.Location, data.City, data.Country, data.ID,
	)
	return err
}

// Get loads one post with the filter's distance projected. The filter never excludes the row.
func (s *SQL) Get(ctx context.Context, id uint64, filter geo.Filter) (*model.PostEntity, error) {
	distance, args := filter.Select("p")
	query := "SELECT " + postColumns + ", " + distance + " FROM posts p WHERE p.id = ?"
	args = append(args, id)

	var entity model.PostEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PostEntity, error) {
	var entity model.PostEntity
	if err := tx.QueryRowxContext(ctx, getPostForUpdateQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List runs the filtered, newest-first page and its total count.
func (s *SQL) List(ctx context.Context, filter *model.PostFilter) ([]model.PostEntity, int64, error) {
	query, args, countQuery, countArgs, err := buildPostList(filter)
	if err != nil {
		return nil, 0, err
	}

	posts := make([]model.PostEntity, 0)
	if err := s.conn.SelectContext(ctx, &posts, s.conn.Rebind(query), args...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, s.conn.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// buildPostList expands the page query and its count query. Slice arguments are
// flattened by sqlx.In so the placeholders always line up with args.
func buildPostList(filter *model.PostFilter) (string, []any, string, []any, error) {
	where, whereArgs := buildPostWhere(filter)
	from := " FROM posts p JOIN users u ON u.id = p.created_by"
	if len(where) > 0 {
		from += " WHERE " + strings.Join(where, " AND ")
	}

	distance, args := filter.Geo.Select("p")
	args = append(args, whereArgs...)
	args = append(args, filter.Limit, model.Offset(filter.Page, filter.Limit))

	query, args, err := sqlx.In("SELECT "+postColumns+", "+distance+from+" ORDER BY p.id DESC LIMIT ? OFFSET ?", args...)
	if err != nil {
		return "", nil, "", nil, err
	}

	countQuery, countArgs, err := sqlx.In("SELECT COUNT(*)"+from, whereArgs...)
	if err != nil {
		return "", nil, "", nil, err
	}
	return query, args, countQuery, countArgs, nil
}

func buildPostWhere(f *model.PostFilter) ([]string, []any) {
	where := make([]string, 0, 8)
	args := make([]any, 0, 16)

	if f.Status != "" {
		where = append(where, "p.status = ?")
		args = append(args, f.Status)
	}
	if f.ExcludeStatus != "" {
		where = append(where, "p.status <> ?")
		args = append(args, f.ExcludeStatus)
	}
	if f.CreatedBy != 0 {
		where = append(where, "p.created_by = ?")
		args = append(args, f.CreatedBy)
	}
	if len(f.ExcludeAuthors) > 0 {
		where = append(where, "p.created_by NOT IN (?)")
		args = append(args, f.ExcludeAuthors)
	}
	if f.ActiveAuthorsOnly {
		where = append(where, "u.status = ?")
		args = append(args, constant.UserStatusActive)
	}
	if f.ExcludeHelperID != 0 {
		where = append(where, "NOT EXISTS (SELECT 1 FROM post_helpers ph WHERE ph.post_id = p.id AND ph.helper_id = ?)")
		args = append(args, f.ExcludeHelperID)
	}
	if len(f.CategoryIDs) > 0 {
		where = append(where, "EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = p.id AND pc.category_id IN (?))")
		args = append(args, f.CategoryIDs)
	}
	if clause, geoArgs := f.Geo.Where("p"); clause != "" {
		where = append(where, clause)
		args = append(args, geoArgs...)
	}

	return where, args
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.PostStatus) (bool, error) {
	result, err := tx.ExecContext(ctx, updateStatusQuery, to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) FulfillTx(ctx context.Context, tx *sqlx.Tx, id uint64, by constant.FulfilledBy, helpBy *uint64, at time.Time) error {
	_, err := tx.ExecContext(ctx, fulfillPostQuery, constant.PostStatusCompleted, by, helpBy, at, id)
	return err
}

// Delete removes the post; images, categories, tags, helpers and reports cascade.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deletePostQuery, id)
	return err
}

func (s *SQL) ReplaceCategoriesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, categoryIDs []uint64) error {
	if _, err := tx.ExecContext(ctx, deletePostCategoriesQuery, postID); err != nil {
		return err
	}
	for _, id := range categoryIDs {
		if _, err := tx.ExecContext(ctx, insertPostCategoryQuery, postID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) ReplaceTagsTx(ctx context.Context, tx *sqlx.Tx, postID uint64, tagIDs []uint64) error {
	if _, err := tx.ExecContext(ctx, deletePostTagsQuery, postID); err != nil {
		return err
	}
	for _, id := range tagIDs {
		if _, err := tx.ExecContext(ctx, insertPostTagQuery, postID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) ListTagTitlesTx(ctx context.Context, tx *sqlx.Tx, postID uint64) ([]string, error) {
	titles := make([]string, 0)
	if err := tx.SelectContext(ctx, &titles, listPostTagTitlesQuery, postID); err != nil {
		return nil, err
	}
	return titles, nil
}

func (s *SQL) InsertImagesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, images []model.PostImageEntity) error {
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, insertPostImageQuery, postID, img.FileName, img.URL); err != nil {
			return err
		}
	}
	return nil
}

// DeleteImagesTx only removes images that belong to postID.
func (s *SQL) DeleteImagesTx(ctx context.Context, tx *sqlx.Tx, postID uint64, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(deletePostImagesQuery, postID, imageIDs)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}
