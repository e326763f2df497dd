package fulfillment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appfulfillment "github.com/muhammadheryan/heart2help/application/fulfillment"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	feedbackmocks "github.com/muhammadheryan/heart2help/mocks/repository/feedback"
	helpermocks "github.com/muhammadheryan/heart2help/mocks/repository/helper"
	postmocks "github.com/muhammadheryan/heart2help/mocks/repository/post"
	txmocks "github.com/muhammadheryan/heart2help/mocks/repository/tx"
	notifiermocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/repository"
	cerr "github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/geo"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	config       *config.Config
	txRepo       *txmocks.TxRepository
	postRepo     *postmocks.PostRepository
	helperRepo   *helpermocks.HelperRepository
	feedbackRepo *feedbackmocks.FeedbackRepository
	notifier     *notifiermocks.Notifier
}

func newFields(t *testing.T) fields {
	return fields{
		config:       &config.Config{},
		txRepo:       txmocks.NewTxRepository(t),
		postRepo:     postmocks.NewPostRepository(t),
		helperRepo:   helpermocks.NewHelperRepository(t),
		feedbackRepo: feedbackmocks.NewFeedbackRepository(t),
		notifier:     notifiermocks.NewNotifier(t),
	}
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

func boolp(v bool) *bool     { return &v }
func u64p(v uint64) *uint64 { return &v }

func TestFulfillmentApp_RequestFulfill(t *testing.T) {
	type args struct {
		userID uint64
		req    *model.FulfillRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: h2h marks helper fulfilled and completes post",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(true), HelpBy: u64p(2)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusActive, Title: "Ride"}, nil).Once()
				f.helperRepo.On("GetMatchTx", mock.Anything, tx, uint64(3), uint64(1), uint64(2)).
					Return(&model.PostHelperEntity{ID: 9, PostID: 3, RequestorID: 1, HelperID: 2}, nil).Once()
				f.helperRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.PostHelperStatusFulfilled).Return(nil).Once()
				f.postRepo.On("FulfillTx", mock.Anything, tx, uint64(3), constant.FulfilledByH2H, u64p(2), mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.notifier.On("PublishPush", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "success: outsider path needs no helper",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(false)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusActive}, nil).Once()
				f.postRepo.On("FulfillTx", mock.Anything, tx, uint64(3), constant.FulfilledByOutsider, (*uint64)(nil), mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: no matching offer leaves post untouched",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(true), HelpBy: u64p(2)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusActive}, nil).Once()
				f.helperRepo.On("GetMatchTx", mock.Anything, tx, uint64(3), uint64(1), uint64(2)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: already completed is rejected",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(false)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusCompleted}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: canceled post cannot be fulfilled",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(false)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusCanceled}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStatusTransition,
		},
		{
			name: "error: non owner sees not found",
			args: args{userID: 5, req: &model.FulfillRequest{IsH2HUser: boolp(false)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.postRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).
					Return(&model.PostEntity{ID: 3, CreatedBy: 1, Status: constant.PostStatusActive}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: h2h without help_by",
			args:    args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(true)}},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: begin tx fails",
			args: args{userID: 1, req: &model.FulfillRequest{IsH2HUser: boolp(false)}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
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
				tt.mockCall(f, &sqlx.Tx{})
			}
			app := appfulfillment.NewFulfillmentApp(f.config, f.txRepo, f.postRepo, f.helperRepo, f.feedbackRepo, f.notifier)

			err := app.RequestFulfill(context.Background(), tt.args.userID, 3, tt.args.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestFulfillmentApp_HelperFeedback(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.FeedbackRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: negative feedback stores reason types as json",
			req:  &model.FeedbackRequest{UserID: 2, IsPositive: boolp(false), Type: []string{"late", "rude"}, Reason: "never showed"},
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 1}, nil).Once()
				f.feedbackRepo.On("Exists", mock.Anything, uint64(1), uint64(3)).Return(false, nil).Once()
				f.feedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(fb *model.UserFeedbackEntity) bool {
					return fb.PostID == 3 && fb.UserID == 2 && fb.CreatedBy == 1 && !fb.IsPositive &&
						fb.Type != nil && *fb.Type == `["late","rude"]` &&
						fb.Reason != nil && *fb.Reason == "never showed"
				})).Return(uint64(1), nil).Once()
			},
		},
		{
			name: "success: positive feedback ignores type and reason",
			req:  &model.FeedbackRequest{UserID: 2, IsPositive: boolp(true), Type: []string{"x"}, Reason: "y"},
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 1}, nil).Once()
				f.feedbackRepo.On("Exists", mock.Anything, uint64(1), uint64(3)).Return(false, nil).Once()
				f.feedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(fb *model.UserFeedbackEntity) bool {
					return fb.IsPositive && fb.Type == nil && fb.Reason == nil
				})).Return(uint64(1), nil).Once()
			},
		},
		{
			name:    "error: negative feedback without type",
			req:     &model.FeedbackRequest{UserID: 2, IsPositive: boolp(false)},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: second feedback for the same post",
			req:  &model.FeedbackRequest{UserID: 2, IsPositive: boolp(true)},
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 1}, nil).Once()
				f.feedbackRepo.On("Exists", mock.Anything, uint64(1), uint64(3)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: concurrent duplicate hits the unique key",
			req:  &model.FeedbackRequest{UserID: 2, IsPositive: boolp(true)},
			mockCall: func(f fields) {
				f.postRepo.On("Get", mock.Anything, uint64(3), geo.Filter{}).Return(&model.PostEntity{ID: 3, CreatedBy: 1}, nil).Once()
				f.feedbackRepo.On("Exists", mock.Anything, uint64(1), uint64(3)).Return(false, nil).Once()
				f.feedbackRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(0), repository.ErrDuplicate).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: missing post",
			req:  &model.FeedbackRequest{UserID: 2, IsPositive: boolp(true)},
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
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appfulfillment.NewFulfillmentApp(f.config, f.txRepo, f.postRepo, f.helperRepo, f.feedbackRepo, f.notifier)

			err := app.HelperFeedback(context.Background(), 1, 3, tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}
