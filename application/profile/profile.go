package profile

import (
	"context"

	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	blockrepo "github.com/muhammadheryan/heart2help/repository/block"
	categoryrepo "github.com/muhammadheryan/heart2help/repository/category"
	postrepo "github.com/muhammadheryan/heart2help/repository/post"
	userrepo "github.com/muhammadheryan/heart2help/repository/user"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

type ProfileApp interface {
	Show(ctx context.Context, viewerID, userID uint64, req *model.UserProfileRequest, link model.PageLink) (*model.UserProfileResponse, error)
}

type profileAppImpl struct {
	config       *config.Config
	userRepo     userrepo.UserRepository
	postRepo     postrepo.PostRepository
	categoryRepo categoryrepo.CategoryRepository
	blockRepo    blockrepo.BlockRepository
	presenter    *presenter.Presenter
}

func NewProfileApp(config *config.Config, userRepo userrepo.UserRepository, postRepo postrepo.PostRepository, categoryRepo categoryrepo.CategoryRepository, blockRepo blockrepo.BlockRepository, files cloudinary.FileStore) ProfileApp {
	return &profileAppImpl{
		config:       config,
		userRepo:     userRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		blockRepo:    blockRepo,
		presenter:    presenter.New(files),
	}
}

// Show returns the public profile of userID with its non archived posts.
// Users the viewer has blocked are reported as missing.
func (s *profileAppImpl) Show(ctx context.Context, viewerID, userID uint64, req *model.UserProfileRequest, link model.PageLink) (*model.UserProfileResponse, error) {
	if viewerID != userID {
		blocked, err := s.blockRepo.IsBlocked(ctx, viewerID, userID)
		if err != nil {
			logger.Error("[ProfileShow] err blockRepo.IsBlocked", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if blocked {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	user, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		logger.Error("[ProfileShow] err userRepo.GetProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ProfileShow] err categoryRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	page, limit := model.NormalizePage(req.Page, req.Limit, s.config.Feed.PageSize, s.config.Feed.MaxPageSize)
	filter := &model.PostFilter{
		CreatedBy:     userID,
		ExcludeStatus: constant.PostStatusArchived,
		Geo:           geo.NewFilter(geo.NewPoint(req.Latitude, req.Longitude), nil, s.config.Feed.DefaultMiles, true),
		Page:          page,
		Limit:         limit,
	}
	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ProfileShow] err postRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	details, err := s.postRepo.Preload(ctx, posts, constant.RelationFeed, viewerID)
	if err != nil {
		logger.Error("[ProfileShow] err postRepo.Preload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserProfileResponse{
		User:       s.presenter.Profile(user),
		Categories: s.presenter.Categories(categories),
		Posts: model.PostCollection{
			Posts: s.presenter.Posts(details),
			Meta:  model.NewPaginationMeta(total, page, limit, link.BaseURL, link.Query),
		},
	}, nil
}
