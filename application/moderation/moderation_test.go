package moderation_test

import (
	"context"
	"errors"
	"testing"

	appmoderation "github.com/muhammadheryan/heart2help/application/moderation"
	"github.com/muhammadheryan/heart2help/constant"
	blockmocks "github.com/muhammadheryan/heart2help/mocks/repository/block"
	postmocks "github.com/muhammadheryan/heart2help/mocks/repository/post"
	reportmocks "github.com/muhammadheryan/heart2help/mocks/repository/report"
	usermocks "github.com/muhammadheryan/heart2help/mocks/repository/user"
	filemocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/cloudinary"
	notifiermocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	cerr "github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	userRepo   *usermocks.UserRepository
	postRepo   *postmocks.PostRepository
	blockRepo  *blockmocks.BlockRepository
	reportRepo *reportmocks.ReportRepository
	files      *filemocks.FileStore
	notifier   *notifiermocks.Notifier
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:   usermocks.NewUserRepository(t),
		postRepo:   postmocks.NewPostRepository(t),
		blockRepo:  blockmocks.NewBlockRepository(t),
		reportRepo: reportmocks.NewReportRepository(t),
		files:      filemocks.NewFileStore(t),
		notifier:   notifiermocks.NewNotifier(t),
	}
}

func (f fields) app() appmoderation.ModerationApp {
	return appmoderation.NewModerationApp(f.userRepo, f.postRepo, f.blockRepo, f.reportRepo, f.files, f.notifier)
}

func checkErr(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestModerationApp_Block(t *testing.T) {
	tests := []struct {
		name     string
		targetID uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: new block",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.blockRepo.On("Create", mock.Anything, uint64(1), uint64(2)).Return(true, nil).Once()
			},
		},
		{
			name:     "success: repeated block is a no-op",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.blockRepo.On("Create", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()
			},
		},
		{
			name:     "error: self block",
			targetID: 1,
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
		{
			name:     "error: unknown user",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: repository failure",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.blockRepo.On("Create", mock.Anything, uint64(1), uint64(2)).Return(false, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			checkErr(t, f.app().Block(context.Background(), 1, tt.targetID), tt.wantErr, tt.errCode)
		})
	}
}

func TestModerationApp_Unblock(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
		wantErr bool
		errCode constant.ErrorType
	}{
		{name: "success: block removed", deleted: true},
		{name: "error: nothing to remove", deleted: false, wantErr: true, errCode: constant.ErrNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.blockRepo.On("Delete", mock.Anything, uint64(1), uint64(2)).Return(tt.deleted, nil).Once()
			checkErr(t, f.app().Unblock(context.Background(), 1, 2), tt.wantErr, tt.errCode)
		})
	}
}

func TestModerationApp_BlockList(t *testing.T) {
	f := newFields(t)
	pic := "avatars/2"
	f.blockRepo.On("ListWithUsers", mock.Anything, uint64(1)).Return([]model.BlockedUser{
		{ID: 1, UserID: 2, CreatedBy: 1, User: model.UserSummary{ID: 2, ProfilePicture: &pic}},
	}, nil).Once()
	f.files.On("URLFor", "avatars/2").Return("https://cdn/avatars/2").Once()

	got, err := f.app().BlockList(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "https://cdn/avatars/2", *got.Users[0].User.ProfilePicture)
}

func TestModerationApp_ReportUser(t *testing.T) {
	req := &model.ReportRequest{Reason: []string{"spam", " abuse "}, Comment: "keeps messaging"}

	tests := []struct {
		name     string
		targetID uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: report stored and event published",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.reportRepo.On("HasPendingUserReport", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()
				f.reportRepo.On("CreateUserReport", mock.Anything, mock.MatchedBy(func(r *model.UserReportEntity) bool {
					return r.UserID == 2 && r.CreatedBy == 1 && r.Reason == `["spam","abuse"]` &&
						r.Comment != nil && r.Status == constant.ReportStatusPending
				})).Return(uint64(4), nil).Once()
				f.notifier.On("PublishEvent", mock.Anything, constant.EventUserReported, mock.MatchedBy(func(r *model.UserReportEntity) bool {
					return r.ID == 4
				})).Return(nil).Once()
			},
		},
		{
			name:     "error: self report",
			targetID: 1,
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
		{
			name:     "error: pending report exists",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.reportRepo.On("HasPendingUserReport", mock.Anything, uint64(1), uint64(2)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:     "error: duplicate caught by unique key",
			targetID: 2,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{ID: 2}, nil).Once()
				f.reportRepo.On("HasPendingUserReport", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()
				f.reportRepo.On("CreateUserReport", mock.Anything, mock.Anything).Return(uint64(0), repository.ErrDuplicate).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			checkErr(t, f.app().ReportUser(context.Background(), 1, tt.targetID, req), tt.wantErr, tt.errCode)
		})
	}
}

func TestModerationApp_ReportPost(t *testing.T) {
	req := &model.ReportRequest{Reason: []string{"scam"}}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: report stored and event published",
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 2}, nil).Once()
				f.reportRepo.On("HasPendingPostReport", mock.Anything, uint64(1), uint64(3)).Return(false, nil).Once()
				f.reportRepo.On("CreatePostReport", mock.Anything, mock.MatchedBy(func(r *model.PostReportEntity) bool {
					return r.PostID == 3 && r.CreatedBy == 1 && r.Comment == nil
				})).Return(uint64(8), nil).Once()
				f.notifier.On("PublishEvent", mock.Anything, constant.EventPostReported, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "error: own post",
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 1}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: pending report exists",
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 2}, nil).Once()
				f.reportRepo.On("HasPendingPostReport", mock.Anything, uint64(1), uint64(3)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: concurrent report hits the pending unique key",
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 2}, nil).Once()
				f.reportRepo.On("HasPendingPostReport", mock.Anything, uint64(1), uint64(3)).Return(false, nil).Once()
				f.reportRepo.On("CreatePostReport", mock.Anything, mock.Anything).Return(uint64(0), repository.ErrDuplicate).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: missing post",
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			checkErr(t, f.app().ReportPost(context.Background(), 1, 3, req), tt.wantErr, tt.errCode)
		})
	}
}
