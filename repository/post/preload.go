package post

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
)

const (
	preloadImagesQuery = `SELECT id, post_id, file_name, url FROM post_images WHERE post_id IN (?) ORDER BY id`
	preloadCategories  = `SELECT pc.post_id, c.id, c.title, c.icon, c.is_active, c.created_at
FROM post_categories pc JOIN categories c ON c.id = pc.category_id
WHERE pc.post_id IN (?) ORDER BY c.id`
	preloadTags = `SELECT pt.post_id, t.id, t.title, t.count
FROM post_tags pt JOIN tags t ON t.id = pt.tag_id
WHERE pt.post_id IN (?) ORDER BY t.id`
	preloadAuthors = `SELECT id, first_name, last_name, email, profile_picture, status, type FROM users WHERE id IN (?)`
	preloadReports = `SELECT DISTINCT post_id FROM post_reports WHERE created_by = ? AND status = ? AND post_id IN (?)`
	preloadHelpers = `SELECT ph.id, ph.post_id, ph.status, ph.message,
u.id AS "helper.id", u.first_name AS "helper.first_name", u.last_name AS "helper.last_name",
u.email AS "helper.email", u.profile_picture AS "helper.profile_picture", u.status AS "helper.status", u.type AS "helper.type"
FROM post_helpers ph JOIN users u ON u.id = ph.helper_id
WHERE ph.post_id IN (?) ORDER BY ph.id DESC`
)

type categoryRow struct {
	PostID uint64 `db:"post_id"`
	model.CategoryEntity
}

type tagRow struct {
	PostID uint64 `db:"post_id"`
	model.TagEntity
}

type helperRow struct {
	ID      uint64                    `db:"id"`
	PostID  uint64                    `db:"post_id"`
	Status  constant.PostHelperStatus `db:"status"`
	Message *string                   `db:"message"`
	Helper  model.UserSummary         `db:"helper"`
}

func (s *SQL) Preload(ctx context.Context, posts []model.PostEntity, rel constant.PostRelation, viewerID uint64) ([]model.PostDetail, error) {
	details := make([]model.PostDetail, len(posts))
	if len(posts) == 0 {
		return details, nil
	}

	index := make(map[uint64]int, len(posts))
	postIDs := make([]uint64, 0, len(posts))
	authorIDs := make([]uint64, 0, len(posts))
	seenAuthor := make(map[uint64]struct{}, len(posts))
	for i, p := range posts {
		details[i] = model.PostDetail{
			Post:       p,
			Images:     []model.PostImageEntity{},
			Categories: []model.CategoryEntity{},
			Tags:       []model.TagEntity{},
			Helpers:    []model.PostHelperView{},
		}
		index[p.ID] = i
		postIDs = append(postIDs, p.ID)
		if _, ok := seenAuthor[p.CreatedBy]; !ok {
			seenAuthor[p.CreatedBy] = struct{}{}
			authorIDs = append(authorIDs, p.CreatedBy)
		}
	}

	if rel.Has(constant.RelationImages) {
		var rows []model.PostImageEntity
		if err := s.selectIn(ctx, &rows, preloadImagesQuery, postIDs); err != nil {
			return nil, err
		}
		for _, r := range rows {
			d := &details[index[r.PostID]]
			d.Images = append(d.Images, r)
		}
	}

	if rel.Has(constant.RelationCategories) {
		var rows []categoryRow
		if err := s.selectIn(ctx, &rows, preloadCategories, postIDs); err != nil {
			return nil, err
		}
		for _, r := range rows {
			d := &details[index[r.PostID]]
			d.Categories = append(d.Categories, r.CategoryEntity)
		}
	}

	if rel.Has(constant.RelationTags) {
		var rows []tagRow
		if err := s.selectIn(ctx, &rows, preloadTags, postIDs); err != nil {
			return nil, err
		}
		for _, r := range rows {
			d := &details[index[r.PostID]]
			d.Tags = append(d.Tags, r.TagEntity)
		}
	}

	if rel.Has(constant.RelationAuthor) {
		var rows []model.UserSummary
		if err := s.selectIn(ctx, &rows, preloadAuthors, authorIDs); err != nil {
			return nil, err
		}
		authors := make(map[uint64]model.UserSummary, len(rows))
		for _, r := range rows {
			authors[r.ID] = r
		}
		for i := range details {
			if a, ok := authors[details[i].Post.CreatedBy]; ok {
				author := a
				details[i].Author = &author
			}
		}
	}

	if rel.Has(constant.RelationViewerReport) && viewerID != 0 {
		var reported []uint64
		if err := s.selectIn(ctx, &reported, preloadReports, viewerID, constant.ReportStatusPending, postIDs); err != nil {
			return nil, err
		}
		for _, id := range reported {
			details[index[id]].Reported = true
		}
	}

	if rel.Has(constant.RelationHelpers) {
		var rows []helperRow
		if err := s.selectIn(ctx, &rows, preloadHelpers, postIDs); err != nil {
			return nil, err
		}
		for _, r := range rows {
			d := &details[index[r.PostID]]
			d.Helpers = append(d.Helpers, model.PostHelperView{
				ID:      r.ID,
				PostID:  r.PostID,
				Status:  r.Status,
				Message: r.Message,
				Helper:  r.Helper,
			})
		}
	}

	return details, nil
}

func (s *SQL) selectIn(ctx context.Context, dest any, query string, args ...any) error {
	q, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return err
	}
	return s.conn.SelectContext(ctx, dest, s.conn.Rebind(q), inArgs...)
}
