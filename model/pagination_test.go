package model_test

import (
	"net/url"
	"testing"

	"github.com/muhammadheryan/heart2help/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	query := url.Values{"categories": {"1,2"}, "page": {"2"}, "limit": {"10"}}

	meta := model.NewPaginationMeta(25, 2, 10, "/posts", query)

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.LastPage)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, map[string]string{"categories": "1,2", "limit": "10"}, meta.QueryString)
	assert.Equal(t, "/posts?categories=1%2C2&limit=10&page=1", meta.FirstPageURL)
	require.NotNil(t, meta.NextPageURL)
	assert.Equal(t, "/posts?categories=1%2C2&limit=10&page=3", *meta.NextPageURL)
	require.NotNil(t, meta.PreviousPageURL)
}

func TestNewPaginationMeta_Empty(t *testing.T) {
	meta := model.NewPaginationMeta(0, 1, 20, "/posts", url.Values{})

	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.NextPageURL)
	assert.Nil(t, meta.PreviousPageURL)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, model.Offset(0, 20))
	assert.Equal(t, 0, model.Offset(1, 20))
	assert.Equal(t, 40, model.Offset(3, 20))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLim: 20},
		{name: "kept", page: 3, limit: 10, wantPage: 3, wantLim: 10},
		{name: "capped", page: 1, limit: 1000, wantPage: 1, wantLim: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := model.NormalizePage(tt.page, tt.limit, 20, 100)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}
