package post

import (
	"strings"
	"testing"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestBuildPostWhere(t *testing.T) {
	center := geo.NewPoint(f64(40), f64(-74))

	tests := []struct {
		name     string
		filter   *model.PostFilter
		want     []string
		wantArgs []any
	}{
		{
			name:   "no filter",
			filter: &model.PostFilter{},
		},
		{
			name:     "history by author",
			filter:   &model.PostFilter{Status: constant.PostStatusCompleted, CreatedBy: 4},
			want:     []string{"p.status = ?", "p.created_by = ?"},
			wantArgs: []any{constant.PostStatusCompleted, uint64(4)},
		},
		{
			name:     "empty blocked list adds no clause",
			filter:   &model.PostFilter{ExcludeStatus: constant.PostStatusCanceled, ExcludeAuthors: []uint64{}, ActiveAuthorsOnly: true},
			want:     []string{"p.status <> ?", "u.status = ?"},
			wantArgs: []any{constant.PostStatusCanceled, constant.UserStatusActive},
		},
		{
			name: "feed with blocked authors, helper and categories",
			filter: &model.PostFilter{
				Status:          constant.PostStatusActive,
				ExcludeAuthors:  []uint64{8, 9},
				ExcludeHelperID: 5,
				CategoryIDs:     []uint64{1},
			},
			want: []string{
				"p.status = ?",
				"p.created_by NOT IN (?)",
				"NOT EXISTS (SELECT 1 FROM post_helpers ph WHERE ph.post_id = p.id AND ph.helper_id = ?)",
				"EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = p.id AND pc.category_id IN (?))",
			},
			wantArgs: []any{constant.PostStatusActive, []uint64{8, 9}, uint64(5), []uint64{1}},
		},
		{
			name:     "select-only geo adds no clause",
			filter:   &model.PostFilter{Geo: geo.NewFilter(center, nil, 5, true)},
			wantArgs: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildPostWhere(tt.filter)
			assert.ElementsMatch(t, tt.want, where)
			assert.ElementsMatch(t, tt.wantArgs, args)
			assert.Equal(t, strings.Count(strings.Join(where, " AND "), "?"), len(args))
		})
	}
}

func TestBuildPostWhere_Geo(t *testing.T) {
	filter := &model.PostFilter{
		Status: constant.PostStatusActive,
		Geo:    geo.NewFilter(geo.NewPoint(f64(40), f64(-74)), f64(10), 5, false),
	}

	where, args := buildPostWhere(filter)
	require.Len(t, where, 2)
	assert.Equal(t, "p.status = ?", where[0])
	assert.Contains(t, where[1], "p.latitude BETWEEN ? AND ?")
	assert.Equal(t, strings.Count(strings.Join(where, " AND "), "?"), len(args))
	assert.Equal(t, constant.PostStatusActive, args[0])
	assert.Equal(t, 10.0, args[len(args)-1])
}

func TestBuildPostList(t *testing.T) {
	tests := []struct {
		name   string
		filter *model.PostFilter
	}{
		{
			name:   "plain page",
			filter: &model.PostFilter{Page: 1, Limit: 20},
		},
		{
			name:   "no blocked authors",
			filter: &model.PostFilter{Status: constant.PostStatusActive, ExcludeAuthors: nil, Page: 2, Limit: 20},
		},
		{
			name: "full feed",
			filter: &model.PostFilter{
				Status:            constant.PostStatusActive,
				ExcludeAuthors:    []uint64{8, 9, 10},
				ActiveAuthorsOnly: true,
				ExcludeHelperID:   5,
				CategoryIDs:       []uint64{1, 2},
				Geo:               geo.NewFilter(geo.NewPoint(f64(40), f64(-74)), f64(10), 5, false),
				Page:              3,
				Limit:             20,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			query, args, countQuery, countArgs, err := buildPostList(tt.filter)
			require.NoError(t, err)

			assert.Equal(t, strings.Count(query, "?"), len(args))
			assert.Equal(t, strings.Count(countQuery, "?"), len(countArgs))
			assert.True(t, strings.HasSuffix(query, "ORDER BY p.id DESC LIMIT ? OFFSET ?"))
			assert.Equal(t, tt.filter.Limit, args[len(args)-2])
			assert.Equal(t, model.Offset(tt.filter.Page, tt.filter.Limit), args[len(args)-1])
			assert.True(t, strings.HasPrefix(countQuery, "SELECT COUNT(*) FROM posts p"))
			assert.NotContains(t, countQuery, "distance")
		})
	}
}

func TestBuildPostList_ExpandsSlices(t *testing.T) {
	query, args, _, _, err := buildPostList(&model.PostFilter{ExcludeAuthors: []uint64{8, 9, 10}, Limit: 20})
	require.NoError(t, err)

	assert.Contains(t, query, "p.created_by NOT IN (?, ?, ?)")
	assert.Equal(t, []any{uint64(8), uint64(9), uint64(10), 20, 0}, args)
}
