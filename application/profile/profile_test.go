package profile_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	appprofile "github.com/muhammadheryan/heart2help/application/profile"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	blockmocks "github.com/muhammadheryan/heart2help/mocks/repository/block"
	categorymocks "github.com/muhammadheryan/heart2help/mocks/repository/category"
	postmocks "github.com/muhammadheryan/heart2help/mocks/repository/post"
	usermocks "github.com/muhammadheryan/heart2help/mocks/repository/user"
	filemocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/model"
	cerr "github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileApp_Show(t *testing.T) {
	type fields struct {
		userRepo     *usermocks.UserRepository
		postRepo     *postmocks.PostRepository
		categoryRepo *categorymocks.CategoryRepository
		blockRepo    *blockmocks.BlockRepository
		files        *filemocks.FileStore
	}
	lat, lng := 40.0, -74.0

	tests := []struct {
		name     string
		viewerID uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		check    func(t *testing.T, got *model.UserProfileResponse)
	}{
		{
			name:     "success: counters, categories and non archived posts",
			viewerID: 1,
			mockCall: func(f fields) {
				f.blockRepo.On("IsBlocked", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()
				f.userRepo.On("GetProfile", mock.Anything, uint64(2)).Return(&model.UserProfileEntity{
					UserSummary: model.UserSummary{ID: 2, FirstName: "Grace", LastName: "Hopper"},
					IsVerified:  true,
					TotalHelps:  4,
					ThumbsUp:    3,
				}, nil).Once()
				f.categoryRepo.On("ListByUser", mock.Anything, uint64(2)).Return([]model.CategoryEntity{{ID: 1, Title: "Food", IsActive: true}}, nil).Once()
				f.postRepo.On("List", mock.Anything, mock.MatchedBy(func(pf *model.PostFilter) bool {
					return pf.CreatedBy == 2 && pf.ExcludeStatus == constant.PostStatusArchived &&
						pf.Geo.Enabled() && pf.Geo.SelectOnly && pf.Page == 1 && pf.Limit == 20
				})).Return([]model.PostEntity{{ID: 9, CreatedBy: 2}}, int64(1), nil).Once()
				f.postRepo.On("Preload", mock.Anything, []model.PostEntity{{ID: 9, CreatedBy: 2}}, constant.RelationFeed, uint64(1)).
					Return([]model.PostDetail{{Post: model.PostEntity{ID: 9, CreatedBy: 2}}}, nil).Once()
			},
			check: func(t *testing.T, got *model.UserProfileResponse) {
				assert.Equal(t, "Grace Hopper", got.User.FullName)
				assert.Equal(t, int64(4), got.User.TotalHelps)
				assert.Equal(t, int64(3), got.User.ThumbsUp)
				assert.Len(t, got.Categories, 1)
				assert.Len(t, got.Posts.Posts, 1)
				assert.Equal(t, int64(1), got.Posts.Meta.Total)
			},
		},
		{
			name:     "error: viewer blocked the user",
			viewerID: 1,
			mockCall: func(f fields) {
				f.blockRepo.On("IsBlocked", mock.Anything, uint64(1), uint64(2)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: unknown user",
			viewerID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("GetProfile", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: profile lookup fails",
			viewerID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("GetProfile", mock.Anything, uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:     usermocks.NewUserRepository(t),
				postRepo:     postmocks.NewPostRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				blockRepo:    blockmocks.NewBlockRepository(t),
				files:        filemocks.NewFileStore(t),
			}
			tt.mockCall(f)
			cfg := &config.Config{Feed: config.FeedConfig{PageSize: 20, MaxPageSize: 100, DefaultMiles: 5}}
			app := appprofile.NewProfileApp(cfg, f.userRepo, f.postRepo, f.categoryRepo, f.blockRepo, f.files)

			req := &model.UserProfileRequest{Latitude: &lat, Longitude: &lng}
			got, err := app.Show(context.Background(), tt.viewerID, 2, req, model.PageLink{BaseURL: "/users/2", Query: url.Values{}})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Show() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			tt.check(t, got)
		})
	}
}
