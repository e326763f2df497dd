package category

import (
	"context"

	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	categoryrepo "github.com/muhammadheryan/heart2help/repository/category"
	txrepo "github.com/muhammadheryan/heart2help/repository/tx"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	List(ctx context.Context) ([]model.CategoryResponse, error)
	// AssignUser replaces the preferred categories of userID.
	AssignUser(ctx context.Context, userID uint64, req *model.AssignCategoriesRequest) error
}

type categoryAppImpl struct {
	txRepo       txrepo.TxRepository
	categoryRepo categoryrepo.CategoryRepository
	presenter    *presenter.Presenter
}

func NewCategoryApp(txRepo txrepo.TxRepository, categoryRepo categoryrepo.CategoryRepository, files cloudinary.FileStore) CategoryApp {
	return &categoryAppImpl{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		presenter:    presenter.New(files),
	}
}

func (s *categoryAppImpl) List(ctx context.Context) ([]model.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[CategoryList] err categoryRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.presenter.Categories(categories), nil
}

func (s *categoryAppImpl) AssignUser(ctx context.Context, userID uint64, req *model.AssignCategoriesRequest) error {
	ids := make([]uint64, 0, len(req.Categories))
	seen := make(map[uint64]bool, len(req.Categories))
	for _, id := range req.Categories {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	count, err := s.categoryRepo.CountExisting(ctx, ids)
	if err != nil {
		logger.Error("[AssignUser] err categoryRepo.CountExisting", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count != len(ids) {
		return errors.SetValidationError(map[string]string{"categories": "The selected categories is invalid."})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AssignUser] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.categoryRepo.ReplaceUserCategoriesTx(ctx, tx, userID, ids); err != nil {
		logger.Error("[AssignUser] err categoryRepo.ReplaceUserCategoriesTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AssignUser] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
