// Package fulfillment closes a post, either through a matched helper or an outside arrangement,
// and records feedback about the helper afterwards.
package fulfillment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	feedbackrepo "github.com/muhammadheryan/heart2help/repository/feedback"
	helperrepo "github.com/muhammadheryan/heart2help/repository/helper"
	postrepo "github.com/muhammadheryan/heart2help/repository/post"
	txrepo "github.com/muhammadheryan/heart2help/repository/tx"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

type FulfillmentApp interface {
	RequestFulfill(ctx context.Context, userID, postID uint64, req *model.FulfillRequest) error
	HelperFeedback(ctx context.Context, userID, postID uint64, req *model.FeedbackRequest) error
}

type fulfillmentAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	postRepo     postrepo.PostRepository
	helperRepo   helperrepo.HelperRepository
	feedbackRepo feedbackrepo.FeedbackRepository
	notifier     rabbitmq.Notifier
	now          func() time.Time
}

func NewFulfillmentApp(config *config.Config, txRepo txrepo.TxRepository, postRepo postrepo.PostRepository, helperRepo helperrepo.HelperRepository, feedbackRepo feedbackrepo.FeedbackRepository, notifier rabbitmq.Notifier) FulfillmentApp {
	return &fulfillmentAppImpl{
		config:       config,
		txRepo:       txRepo,
		postRepo:     postRepo,
		helperRepo:   helperRepo,
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// RequestFulfill moves a post owned by userID to completed. The post row stays locked
// until commit so two concurrent requests cannot both fulfill it.
func (s *fulfillmentAppImpl) RequestFulfill(ctx context.Context, userID, postID uint64, req *model.FulfillRequest) error {
	h2h := req.IsH2HUser != nil && *req.IsH2HUser
	if h2h && req.HelpBy == nil {
		return errors.SetValidationError(map[string]string{"help_by": "The help_by field is required."})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RequestFulfill] begin tx", zap.String("error", err.Error()))
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
		logger.Error("[RequestFulfill] err postRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil || post.CreatedBy != userID {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("Your post doesn't exists.")
	}
	if post.Status == constant.PostStatusCompleted {
		return errors.SetCustomError(constant.ErrConflict).WithMessage("This post is already fulfilled.")
	}
	if post.Status.IsTerminal() {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	now := s.now()
	var helper *model.PostHelperEntity
	if h2h {
		helper, err = s.helperRepo.GetMatchTx(ctx, tx, post.ID, post.CreatedBy, *req.HelpBy)
		if err != nil {
			logger.Error("[RequestFulfill] err helperRepo.GetMatchTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if helper == nil {
			return errors.SetCustomError(constant.ErrNotFound).WithMessage("Your request data doesn't exists.")
		}

		if err := s.helperRepo.UpdateStatusTx(ctx, tx, helper.ID, constant.PostHelperStatusFulfilled); err != nil {
			logger.Error("[RequestFulfill] err helperRepo.UpdateStatusTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		err = s.postRepo.FulfillTx(ctx, tx, post.ID, constant.FulfilledByH2H, req.HelpBy, now)
	} else {
		err = s.postRepo.FulfillTx(ctx, tx, post.ID, constant.FulfilledByOutsider, nil, now)
	}
	if err != nil {
		logger.Error("[RequestFulfill] err postRepo.FulfillTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RequestFulfill] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if helper != nil {
		msg := rabbitmq.PushMessage{
			Title:   "Thank you for helping",
			Body:    post.Title + " has been marked as fulfilled.",
			Payload: rabbitmq.PushPayload(constant.PushCodeViewPost, post.ID, constant.PushEventViewPost),
			UserIDs: []uint64{helper.HelperID},
		}
		if err := s.notifier.PublishPush(ctx, msg); err != nil {
			logger.Error("[RequestFulfill] err notifier.PublishPush", zap.String("error", err.Error()))
		}
	}
	return nil
}

func (s *fulfillmentAppImpl) HelperFeedback(ctx context.Context, userID, postID uint64, req *model.FeedbackRequest) error {
	positive := req.IsPositive != nil && *req.IsPositive
	if !positive && len(req.Type) == 0 {
		return errors.SetValidationError(map[string]string{"type": "The type field is required."})
	}
	if req.UserID == userID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You can not leave feedback for yourself.")
	}

	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error("[HelperFeedback] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("Your post request doesn't exists.")
	}

	exists, err := s.feedbackRepo.Exists(ctx, userID, post.ID)
	if err != nil {
		logger.Error("[HelperFeedback] err feedbackRepo.Exists", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrConflict).WithMessage("Your feedback is already exists.")
	}

	feedback := &model.UserFeedbackEntity{
		PostID:     post.ID,
		UserID:     req.UserID,
		CreatedBy:  userID,
		IsPositive: positive,
	}
	if !positive {
		types, err := json.Marshal(req.Type)
		if err != nil {
			logger.Error("[HelperFeedback] err json.Marshal", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		typeStr := string(types)
		feedback.Type = &typeStr
		if req.Reason != "" {
			feedback.Reason = &req.Reason
		}
	}

	if _, err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		// the unique key on (created_by, post_id) catches a concurrent duplicate
		if repository.IsDuplicate(err) {
			return errors.SetCustomError(constant.ErrConflict).WithMessage("Your feedback is already exists.")
		}
		logger.Error("[HelperFeedback] err feedbackRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
