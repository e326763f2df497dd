package presenter_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/constant"
	filemocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPresenter_Post(t *testing.T) {
	files := filemocks.NewFileStore(t)
	files.On("URLFor", "heart2help/img1").Return("https://cdn/img1")
	files.On("URLFor", "icons/food").Return("https://cdn/food")
	files.On("URLFor", "avatars/1").Return("https://cdn/avatar1")

	now := time.Now()
	d := model.PostDetail{
		Post: model.PostEntity{
			ID:          7,
			Title:       "Need groceries",
			Status:      constant.PostStatusActive,
			FulfilledBy: constant.FulfilledByPending,
			ComeToYou:   true,
			Distance:    ptr(1.23456),
			CreatedBy:   1,
			CreatedAt:   now,
		},
		Images:     []model.PostImageEntity{{ID: 1, PostID: 7, FileName: "a.png", URL: "heart2help/img1"}},
		Categories: []model.CategoryEntity{{ID: 2, Title: "Food", Icon: ptr("icons/food"), IsActive: true}},
		Tags:       []model.TagEntity{{ID: 1, Title: "milk"}, {ID: 2, Title: "eggs"}},
		Author:     &model.UserSummary{ID: 1, FirstName: "Ada", ProfilePicture: ptr("avatars/1")},
		Reported:   true,
	}

	res := presenter.New(files).Post(d)

	assert.Equal(t, "1.23", res.Distance)
	assert.Equal(t, 1, res.ComeToYou)
	assert.Equal(t, 0, res.RequireMorePeoples)
	assert.Equal(t, 1, res.IsReported)
	assert.Equal(t, "milk,eggs", res.Tags)
	assert.Equal(t, "pending", res.FulfilledBy)
	require.Len(t, res.Images, 1)
	assert.Equal(t, "https://cdn/img1", *res.Images[0].URL)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "https://cdn/food", *res.Categories[0].Icon)
	assert.Equal(t, 1, res.Categories[0].IsActive)
	require.NotNil(t, res.User)
	assert.Equal(t, "https://cdn/avatar1", *res.User.ProfilePicture)
	assert.Nil(t, res.PostHelpers)
}

func TestPresenter_Post_NoDistance(t *testing.T) {
	files := filemocks.NewFileStore(t)

	res := presenter.New(files).Post(model.PostDetail{
		Post:    model.PostEntity{ID: 1},
		Helpers: []model.PostHelperView{{ID: 3, PostID: 1, Helper: model.UserSummary{ID: 9}}},
	})

	assert.Equal(t, "0.00", res.Distance)
	assert.Equal(t, "", res.Tags)
	assert.Empty(t, res.Images)
	assert.Nil(t, res.User)
	require.Len(t, res.PostHelpers, 1)
	assert.Nil(t, res.PostHelpers[0].Helper.ProfilePicture)
}

func TestPresenter_User(t *testing.T) {
	files := filemocks.NewFileStore(t)
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	res := presenter.New(files).User(&model.UserEntity{
		ID:        1,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Status:    constant.UserStatusActive,
		Type:      constant.UserTypeHelp,
		DOB:       &dob,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	assert.Equal(t, "Ada Lovelace", res.FullName)
	assert.Equal(t, "1990-05-01", *res.DOB)
	assert.Equal(t, "2024-01-02", res.CreatedAt)
	assert.Nil(t, res.ProfilePicture)
}
