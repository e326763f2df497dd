package moderation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	blockrepo "github.com/muhammadheryan/heart2help/repository/block"
	postrepo "github.com/muhammadheryan/heart2help/repository/post"
	reportrepo "github.com/muhammadheryan/heart2help/repository/report"
	userrepo "github.com/muhammadheryan/heart2help/repository/user"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
)

type ModerationApp interface {
	Block(ctx context.Context, actorID, targetID uint64) error
	Unblock(ctx context.Context, actorID, targetID uint64) error
	BlockList(ctx context.Context, actorID uint64) (*model.BlockListResponse, error)
	ReportUser(ctx context.Context, actorID, targetID uint64, req *model.ReportRequest) error
	ReportPost(ctx context.Context, actorID, postID uint64, req *model.ReportRequest) error
}

type moderationAppImpl struct {
	userRepo   userrepo.UserRepository
	postRepo   postrepo.PostRepository
	blockRepo  blockrepo.BlockRepository
	reportRepo reportrepo.ReportRepository
	notifier   rabbitmq.Notifier
	presenter  *presenter.Presenter
}

func NewModerationApp(userRepo userrepo.UserRepository, postRepo postrepo.PostRepository, blockRepo blockrepo.BlockRepository, reportRepo reportrepo.ReportRepository, files cloudinary.FileStore, notifier rabbitmq.Notifier) ModerationApp {
	return &moderationAppImpl{
		userRepo:   userRepo,
		postRepo:   postRepo,
		blockRepo:  blockRepo,
		reportRepo: reportRepo,
		notifier:   notifier,
		presenter:  presenter.New(files),
	}
}

// Block is idempotent: blocking an already blocked user succeeds without a second row.
func (s *moderationAppImpl) Block(ctx context.Context, actorID, targetID uint64) error {
	if actorID == targetID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You cannot block yourself.")
	}
	if err := s.userExists(ctx, "[Block]", targetID); err != nil {
		return err
	}

	created, err := s.blockRepo.Create(ctx, actorID, targetID)
	if err != nil {
		logger.Error("[Block] err blockRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !created {
		logger.Debug("[Block] already blocked", zap.Uint64("actor_id", actorID), zap.Uint64("target_id", targetID))
	}
	return nil
}

func (s *moderationAppImpl) Unblock(ctx context.Context, actorID, targetID uint64) error {
	deleted, err := s.blockRepo.Delete(ctx, actorID, targetID)
	if err != nil {
		logger.Error("[Unblock] err blockRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("User is not blocked.")
	}
	return nil
}

func (s *moderationAppImpl) BlockList(ctx context.Context, actorID uint64) (*model.BlockListResponse, error) {
	blocked, err := s.blockRepo.ListWithUsers(ctx, actorID)
	if err != nil {
		logger.Error("[BlockList] err blockRepo.ListWithUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	users := make([]model.BlockedUser, 0, len(blocked))
	for _, b := range blocked {
		b.User = s.presenter.UserSummary(b.User)
		users = append(users, b)
	}
	return &model.BlockListResponse{Users: users}, nil
}

func (s *moderationAppImpl) ReportUser(ctx context.Context, actorID, targetID uint64, req *model.ReportRequest) error {
	if actorID == targetID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You cannot report yourself.")
	}
	if err := s.userExists(ctx, "[ReportUser]", targetID); err != nil {
		return err
	}

	pending, err := s.reportRepo.HasPendingUserReport(ctx, actorID, targetID)
	if err != nil {
		logger.Error("[ReportUser] err reportRepo.HasPendingUserReport", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if pending {
		return errors.SetCustomError(constant.ErrConflict).WithMessage("You already report this user.")
	}

	report := &model.UserReportEntity{
		UserID:    targetID,
		CreatedBy: actorID,
		Reason:    encodeReasons(req.Reason),
		Comment:   optional(req.Comment),
		Status:    constant.ReportStatusPending,
	}
	report.ID, err = s.reportRepo.CreateUserReport(ctx, report)
	if err != nil {
		// a concurrent report won the pending unique key
		if repository.IsDuplicate(err) {
			return errors.SetCustomError(constant.ErrConflict).WithMessage("You already report this user.")
		}
		logger.Error("[ReportUser] err reportRepo.CreateUserReport", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.notifier.PublishEvent(ctx, constant.EventUserReported, report); err != nil {
		logger.Error("[ReportUser] err notifier.PublishEvent", zap.String("error", err.Error()))
	}
	return nil
}

func (s *moderationAppImpl) ReportPost(ctx context.Context, actorID, postID uint64, req *model.ReportRequest) error {
	post, err := s.postRepo.Get(ctx, postID, geo.Filter{})
	if err != nil {
		logger.Error("[ReportPost] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if post.CreatedBy == actorID {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("You can not report your own post.")
	}

	pending, err := s.reportRepo.HasPendingPostReport(ctx, actorID, post.ID)
	if err != nil {
		logger.Error("[ReportPost] err reportRepo.HasPendingPostReport", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if pending {
		return errors.SetCustomError(constant.ErrConflict).WithMessage("You have already reported this post.")
	}

	report := &model.PostReportEntity{
		PostID:    post.ID,
		CreatedBy: actorID,
		Reason:    encodeReasons(req.Reason),
		Comment:   optional(req.Comment),
		Status:    constant.ReportStatusPending,
	}
	report.ID, err = s.reportRepo.CreatePostReport(ctx, report)
	if err != nil {
		// a concurrent report won the pending unique key
		if repository.IsDuplicate(err) {
			return errors.SetCustomError(constant.ErrConflict).WithMessage("You have already reported this post.")
		}
		logger.Error("[ReportPost] err reportRepo.CreatePostReport", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.notifier.PublishEvent(ctx, constant.EventPostReported, report); err != nil {
		logger.Error("[ReportPost] err notifier.PublishEvent", zap.String("error", err.Error()))
	}
	return nil
}

func (s *moderationAppImpl) userExists(ctx context.Context, op string, id uint64) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// encodeReasons stores the reason list as a JSON array.
func encodeReasons(reasons []string) string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
