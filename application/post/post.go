package post

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	blockrepo "github.com/muhammadheryan/heart2help/repository/block"
	categoryrepo "github.com/muhammadheryan/heart2help/repository/category"
	helperrepo "github.com/muhammadheryan/heart2help/repository/helper"
	postrepo "github.com/muhammadheryan/heart2help/repository/post"
	tagrepo "github.com/muhammadheryan/heart2help/repository/tag"
	txrepo "github.com/muhammadheryan/heart2help/repository/tx"
	userrepo "github.com/muhammadheryan/heart2help/repository/user"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

const historyRelations = constant.RelationImages | constant.RelationCategories | constant.RelationTags | constant.RelationAuthor

type PostApp interface {
	Feed(ctx context.Context, viewerID uint64, req *model.FeedRequest, link model.PageLink) (*model.PostCollection, error)
	Create(ctx context.Context, userID uint64, req *model.PostRequest) (*model.CreatePostResponse, error)
	Show(ctx context.Context, viewerID, postID uint64, req *model.PostShowRequest) (*model.PostResponse, error)
	Update(ctx context.Context, userID, postID uint64, req *model.PostRequest) error
	Delete(ctx context.Context, userID, postID uint64) error
	History(ctx context.Context, userID uint64, req *model.HistoryRequest, link model.PageLink) (*model.PostCollection, error)
	UpdateStatus(ctx context.Context, userID, postID uint64, req *model.StatusUpdateRequest) error

	OfferHelp(ctx context.Context, helperID, postID uint64, req *model.OfferHelpRequest) error
	HelpList(ctx context.Context, userID, postID uint64) ([]model.PostHelperView, error)
	UpdateHelpStatus(ctx context.Context, userID, postID, helperID uint64, req *model.HelpStatusRequest) error
}

type postAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	postRepo     postrepo.PostRepository
	tagRepo      tagrepo.TagRepository
	categoryRepo categoryrepo.CategoryRepository
	helperRepo   helperrepo.HelperRepository
	blockRepo    blockrepo.BlockRepository
	userRepo     userrepo.UserRepository
	files        cloudinary.FileStore
	notifier     rabbitmq.Notifier
	presenter    *presenter.Presenter
}

func NewPostApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	postRepo postrepo.PostRepository,
	tagRepo tagrepo.TagRepository,
	categoryRepo categoryrepo.CategoryRepository,
	helperRepo helperrepo.HelperRepository,
	blockRepo blockrepo.BlockRepository,
	userRepo userrepo.UserRepository,
	files cloudinary.FileStore,
	notifier rabbitmq.Notifier,
) PostApp {
	return &postAppImpl{
		config:       config,
		txRepo:       txRepo,
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		helperRepo:   helperRepo,
		blockRepo:    blockRepo,
		userRepo:     userRepo,
		files:        files,
		notifier:     notifier,
		presenter:    presenter.New(files),
	}
}

func (s *postAppImpl) Feed(ctx context.Context, viewerID uint64, req *model.FeedRequest, link model.PageLink) (*model.PostCollection, error) {
	categoryIDs, err := parseIDList("categories", req.Categories)
	if err != nil {
		return nil, err
	}

	// block list is read per request, never cached
	blocked, err := s.blockRepo.ListBlockedIDs(ctx, viewerID)
	if err != nil {
		logger.Error("[Feed] err blockRepo.ListBlockedIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	page, limit := model.NormalizePage(req.Page, req.Limit, s.config.Feed.PageSize, s.config.Feed.MaxPageSize)
	filter := &model.PostFilter{
		Status:            constant.PostStatusActive,
		ExcludeAuthors:    blocked,
		ActiveAuthorsOnly: true,
		ExcludeHelperID:   viewerID,
		CategoryIDs:       categoryIDs,
		Geo:               geo.NewFilter(geo.NewPoint(req.Latitude, req.Longitude), req.Miles, s.config.Feed.DefaultMiles, false),
		Page:              page,
		Limit:             limit,
	}

	return s.collection(ctx, "[Feed]", filter, constant.RelationFeed, viewerID, link)
}

func (s *postAppImpl) History(ctx context.Context, userID uint64, req *model.HistoryRequest, link model.PageLink) (*model.PostCollection, error) {
	page, limit := model.NormalizePage(req.Page, req.Limit, s.config.Feed.PageSize, s.config.Feed.MaxPageSize)
	filter := &model.PostFilter{
		Status:    constant.PostStatus(req.Filter),
		CreatedBy: userID,
		Page:      page,
		Limit:     limit,
	}
	return s.collection(ctx, "[History]", filter, historyRelations, userID, link)
}

func (s *postAppImpl) collection(ctx context.Context, op string, filter *model.PostFilter, rel constant.PostRelation, viewerID uint64, link model.PageLink) (*model.PostCollection, error) {
	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		logger.Error(op+" err postRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	details, err := s.postRepo.Preload(ctx, posts, rel, viewerID)
	if err != nil {
		logger.Error(op+" err postRepo.Preload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PostCollection{
		Posts: s.presenter.Posts(details),
		Meta:  model.NewPaginationMeta(total, filter.Page, filter.Limit, link.BaseURL, link.Query),
	}, nil
}

func (s *postAppImpl) Show(ctx context.Context, viewerID, postID uint64, req *model.PostShowRequest) (*model.PostResponse, error) {
	filter := geo.NewFilter(geo.NewPoint(req.Latitude, req.Longitude), nil, s.config.Feed.DefaultMiles, true)
	post, err := s.postRepo.Get(ctx, postID, filter)
	if err != nil {
		logger.Error("[Show] err postRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if post.CreatedBy != viewerID {
		blocked, err := s.blockRepo.IsBlocked(ctx, viewerID, post.CreatedBy)
		if err != nil {
			logger.Error("[Show] err blockRepo.IsBlocked", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if blocked {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	rel := constant.RelationFeed
	if post.CreatedBy == viewerID {
		rel |= constant.RelationHelpers
	}
	details, err := s.postRepo.Preload(ctx, []model.PostEntity{*post}, rel, viewerID)
	if err != nil {
		logger.Error("[Show] err postRepo.Preload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(details) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	res := s.presenter.Post(details[0])
	return &res, nil
}

func (s *postAppImpl) Create(ctx context.Context, userID uint64, req *model.PostRequest) (*model.CreatePostResponse, error) {
	categoryIDs, err := s.checkCategories(ctx, "[Create]", req.Categories)
	if err != nil {
		return nil, err
	}

	images, err := s.upload(ctx, "[Create]", req.Images)
	if err != nil {
		return nil, err
	}

	post := &model.PostEntity{
		Title:              req.Title,
		Details:            req.Details,
		Status:             constant.PostStatusActive,
		FulfilledBy:        constant.FulfilledByPending,
		ComeToYou:          boolValue(req.ComeToYou),
		RequireMorePeoples: boolValue(req.RequireMorePeoples),
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Location:           req.Location,
		City:               req.City,
		Country:            req.Country,
		CreatedBy:          userID,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		s.discard(ctx, images)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
			s.discard(ctx, images)
		}
	}()

	post.ID, err = s.postRepo.InsertTx(ctx, tx, post)
	if err != nil {
		logger.Error("[Create] err postRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.attach(ctx, tx, "[Create]", post.ID, categoryIDs, req.Tags, nil, images); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifyNearby(ctx, post)
	if err := s.notifier.PublishEvent(ctx, constant.EventPostCreated, post); err != nil {
		logger.Error("[Create] err notifier.PublishEvent", zap.String("error", err.Error()))
	}

	return &model.CreatePostResponse{ID: post.ID}, nil
}

func (s *postAppImpl) Update(ctx context.Context, userID, postID uint64, req *model.PostRequest) error {
	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error("[Update] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil || post.CreatedBy != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	categoryIDs, err := s.checkCategories(ctx, "[Update]", req.Categories)
	if err != nil {
		return err
	}
	removeIDs, err := parseIDList("remove_images", req.RemoveImages)
	if err != nil {
		return err
	}

	images, err := s.upload(ctx, "[Update]", req.Images)
	if err != nil {
		return err
	}

	post.Title = req.Title
	post.Details = req.Details
	post.ComeToYou = boolValue(req.ComeToYou)
	post.RequireMorePeoples = boolValue(req.RequireMorePeoples)
	post.Latitude = req.Latitude
	post.Longitude = req.Longitude
	post.Location = req.Location
	post.City = req.City
	post.Country = req.Country

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Update] begin tx", zap.String("error", err.Error()))
		s.discard(ctx, images)
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
			s.discard(ctx, images)
		}
	}()

	if err := s.postRepo.UpdateTx(ctx, tx, post); err != nil {
		logger.Error("[Update] err postRepo.UpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if len(removeIDs) > 0 {
		if err := s.postRepo.DeleteImagesTx(ctx, tx, post.ID, removeIDs); err != nil {
			logger.Error("[Update] err postRepo.DeleteImagesTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	currentTags, err := s.postRepo.ListTagTitlesTx(ctx, tx, post.ID)
	if err != nil {
		logger.Error("[Update] err postRepo.ListTagTitlesTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.attach(ctx, tx, "[Update]", post.ID, categoryIDs, req.Tags, currentTags, images); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *postAppImpl) Delete(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error("[Delete] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil || post.CreatedBy != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	// child rows go with the post through ON DELETE CASCADE
	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		logger.Error("[Delete] err postRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *postAppImpl) UpdateStatus(ctx context.Context, userID, postID uint64, req *model.StatusUpdateRequest) error {
	status := constant.PostStatus(req.Status)
	if !status.Valid() {
		return errors.SetValidationError(map[string]string{"status": "The status is invalid."})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	post, err := s.postRepo.GetForUpdateTx(ctx, tx, postID)
	if err != nil {
		logger.Error("[UpdateStatus] err postRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if post.CreatedBy != userID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You don`t have access.")
	}

	// completed is only reachable through fulfillment
	if status == constant.PostStatusCompleted || post.Status.IsTerminal() {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}
	if status == post.Status {
		return nil
	}

	updated, err := s.postRepo.UpdateStatusTx(ctx, tx, post.ID, post.Status, status)
	if err != nil {
		logger.Error("[UpdateStatus] err postRepo.UpdateStatusTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return errors.SetCustomError(constant.ErrConflict)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *postAppImpl) checkCategories(ctx context.Context, op string, ids []uint64) ([]uint64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}
	count, err := s.categoryRepo.CountExisting(ctx, ids)
	if err != nil {
		logger.Error(op+" err categoryRepo.CountExisting", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if count != len(ids) {
		return nil, errors.SetValidationError(map[string]string{"categories": "The selected categories is invalid."})
	}
	return ids, nil
}

// upload stores every file before the transaction opens so no row lock waits on the file store.
func (s *postAppImpl) upload(ctx context.Context, op string, files []model.UploadFile) ([]model.PostImageEntity, error) {
	images := make([]model.PostImageEntity, 0, len(files))
	for _, f := range files {
		stored, err := s.files.Upload(ctx, f)
		if err != nil {
			logger.Error(op+" err files.Upload", zap.String("filename", f.Name), zap.String("error", err.Error()))
			s.discard(ctx, images)
			return nil, uploadError(err)
		}
		images = append(images, model.PostImageEntity{FileName: stored.Name, URL: stored.Path})
	}
	return images, nil
}

// discard removes uploads whose rows were never committed.
func (s *postAppImpl) discard(ctx context.Context, images []model.PostImageEntity) {
	for _, img := range images {
		if err := s.files.Delete(ctx, img.URL); err != nil {
			logger.Warn("[Post] err files.Delete", zap.String("path", img.URL), zap.String("error", err.Error()))
		}
	}
}

// attach replaces the category and tag joins and appends images. Only tags not in
// currentTags have their use counter bumped.
func (s *postAppImpl) attach(ctx context.Context, tx *sqlx.Tx, op string, postID uint64, categoryIDs []uint64, rawTags string, currentTags []string, images []model.PostImageEntity) error {
	if err := s.postRepo.ReplaceCategoriesTx(ctx, tx, postID, categoryIDs); err != nil {
		logger.Error(op+" err postRepo.ReplaceCategoriesTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	titles := splitTags(rawTags)
	if added := newTags(titles, currentTags); len(added) > 0 {
		if err := s.tagRepo.IncrementTx(ctx, tx, added); err != nil {
			logger.Error(op+" err tagRepo.IncrementTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	tags, err := s.tagRepo.FindByTitlesTx(ctx, tx, titles)
	if err != nil {
		logger.Error(op+" err tagRepo.FindByTitlesTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	tagIDs := make([]uint64, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}
	if err := s.postRepo.ReplaceTagsTx(ctx, tx, postID, tagIDs); err != nil {
		logger.Error(op+" err postRepo.ReplaceTagsTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if len(images) > 0 {
		if err := s.postRepo.InsertImagesTx(ctx, tx, postID, images); err != nil {
			logger.Error(op+" err postRepo.InsertImagesTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

// notifyNearby pushes the new post to active users within the default radius. Failures are logged only.
func (s *postAppImpl) notifyNearby(ctx context.Context, post *model.PostEntity) {
	center := geo.NewPoint(post.Latitude, post.Longitude)
	if center == nil {
		return
	}

	userIDs, err := s.userRepo.ListNearbyActiveIDs(ctx, geo.NewFilter(center, nil, s.config.Feed.DefaultMiles, false), post.CreatedBy)
	if err != nil {
		logger.Error("[Create] err userRepo.ListNearbyActiveIDs", zap.String("error", err.Error()))
		return
	}
	if len(userIDs) == 0 {
		return
	}

	msg := rabbitmq.PushMessage{
		Title:   "New post created",
		Body:    post.Title,
		Payload: rabbitmq.PushPayload(constant.PushCodeViewPost, post.ID, constant.PushEventViewPost),
		UserIDs: userIDs,
	}
	if err := s.notifier.PublishPush(ctx, msg); err != nil {
		logger.Error("[Create] err notifier.PublishPush", zap.String("error", err.Error()))
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
