package post

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

func (s *postAppImpl) OfferHelp(ctx context.Context, helperID, postID uint64, req *model.OfferHelpRequest) error {
	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error("[OfferHelp] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if post.CreatedBy == helperID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You can not help on your own post.")
	}
	if post.Status != constant.PostStatusActive {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition).WithMessage("This post is no longer accepting help.")
	}

	blocked, err := s.blockRepo.IsBlocked(ctx, post.CreatedBy, helperID)
	if err != nil {
		logger.Error("[OfferHelp] err blockRepo.IsBlocked", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if blocked {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	offer := &model.PostHelperEntity{
		PostID:      post.ID,
		RequestorID: post.CreatedBy,
		HelperID:    helperID,
		Status:      constant.PostHelperStatusPending,
	}
	if req.Message != "" {
		offer.Message = &req.Message
	}
	offer.ID, err = s.helperRepo.Create(ctx, offer)
	if err != nil {
		if repository.IsDuplicate(err) {
			return errors.SetCustomError(constant.ErrConflict).WithMessage("You have already offered help on this post.")
		}
		logger.Error("[OfferHelp] err helperRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	msg := rabbitmq.PushMessage{
		Title:   "Someone offered to help",
		Body:    fmt.Sprintf("You have a new offer on %q.", post.Title),
		Payload: rabbitmq.PushPayload(constant.PushCodeHelpList, post.ID, constant.PushEventHelpList),
		UserIDs: []uint64{post.CreatedBy},
	}
	if err := s.notifier.PublishPush(ctx, msg); err != nil {
		logger.Error("[OfferHelp] err notifier.PublishPush", zap.String("error", err.Error()))
	}
	if err := s.notifier.PublishEvent(ctx, constant.EventHelpOffered, offer); err != nil {
		logger.Error("[OfferHelp] err notifier.PublishEvent", zap.String("error", err.Error()))
	}
	return nil
}

// HelpList returns the offers on a post. Only the owner may see them.
func (s *postAppImpl) HelpList(ctx context.Context, userID, postID uint64) ([]model.PostHelperView, error) {
	post, err := s.ownedPost(ctx, "[HelpList]", userID, postID)
	if err != nil {
		return nil, err
	}

	details, err := s.postRepo.Preload(ctx, []model.PostEntity{*post}, constant.RelationHelpers, userID)
	if err != nil {
		logger.Error("[HelpList] err postRepo.Preload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	helpers := make([]model.PostHelperView, 0)
	if len(details) > 0 {
		for _, h := range details[0].Helpers {
			h.Helper = s.presenter.UserSummary(h.Helper)
			helpers = append(helpers, h)
		}
	}
	return helpers, nil
}

// UpdateHelpStatus lets the owner accept or decline a pending offer.
func (s *postAppImpl) UpdateHelpStatus(ctx context.Context, userID, postID, helperID uint64, req *model.HelpStatusRequest) error {
	status := constant.PostHelperStatus(req.Status)
	if status != constant.PostHelperStatusAccepted && status != constant.PostHelperStatusDeclined {
		return errors.SetValidationError(map[string]string{"status": "The status should be one of accepted,declined."})
	}

	post, err := s.ownedPost(ctx, "[UpdateHelpStatus]", userID, postID)
	if err != nil {
		return err
	}

	offer, err := s.helperRepo.Get(ctx, post.ID, helperID)
	if err != nil {
		logger.Error("[UpdateHelpStatus] err helperRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if offer == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if offer.Status != constant.PostHelperStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	if err := s.helperRepo.UpdateStatus(ctx, offer.ID, status); err != nil {
		logger.Error("[UpdateHelpStatus] err helperRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	msg := rabbitmq.PushMessage{
		Title:   "Help offer " + string(status),
		Body:    fmt.Sprintf("Your offer on %q was %s.", post.Title, status),
		Payload: rabbitmq.PushPayload(constant.PushCodeViewPost, post.ID, constant.PushEventViewPost),
		UserIDs: []uint64{offer.HelperID},
	}
	if err := s.notifier.PublishPush(ctx, msg); err != nil {
		logger.Error("[UpdateHelpStatus] err notifier.PublishPush", zap.String("error", err.Error()))
	}
	return nil
}

// ownedPost loads a post, treating posts of other users as missing.
func (s *postAppImpl) ownedPost(ctx context.Context, op string, userID, postID uint64) (*model.PostEntity, error) {
	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error(op+" err postRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil || post.CreatedBy != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return post, nil
}
