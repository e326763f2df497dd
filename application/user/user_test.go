package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/heart2help/application/user"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	devicemocks "github.com/muhammadheryan/heart2help/mocks/repository/device"
	redismocks "github.com/muhammadheryan/heart2help/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/heart2help/mocks/repository/user"
	filemocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/cloudinary"
	personamocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/persona"
	notifiermocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/rabbitmq"
	smsmocks "github.com/muhammadheryan/heart2help/mocks/thirdparty/twilio"
	"github.com/muhammadheryan/heart2help/model"
	redisrepo "github.com/muhammadheryan/heart2help/repository/redis"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	config     *config.Config
	userRepo   *usermocks.UserRepository
	deviceRepo *devicemocks.DeviceRepository
	redisRepo  *redismocks.RedisRepository
	sms        *smsmocks.SmsSender
	identity   *personamocks.IdentityVerifier
	files      *filemocks.FileStore
	notifier   *notifiermocks.Notifier
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
			},
			OTP: config.OTPConfig{TTL: 10 * time.Minute, MaxAttempts: 5},
		},
		userRepo:   usermocks.NewUserRepository(t),
		deviceRepo: devicemocks.NewDeviceRepository(t),
		redisRepo:  redismocks.NewRedisRepository(t),
		sms:        smsmocks.NewSmsSender(t),
		identity:   personamocks.NewIdentityVerifier(t),
		files:      filemocks.NewFileStore(t),
		notifier:   notifiermocks.NewNotifier(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, f.userRepo, f.deviceRepo, f.redisRepo, f.sms, f.identity, f.files, f.notifier)
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

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserApp_Register(t *testing.T) {
	req := &model.RegisterRequest{
		FirstName:            "Ada",
		LastName:             "Lovelace",
		Email:                "ada@example.com",
		Password:             "Secret#123",
		PasswordConfirmation: "Secret#123",
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: user created and linked to persona",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.FirstName == "Ada" && u.Email == "ada@example.com" &&
						u.Status == constant.UserStatusActive &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Secret#123")) == nil
				})).Return(&model.UserEntity{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Status: constant.UserStatusActive}, nil).Once()
				f.identity.On("CreateAccount", mock.Anything, mock.AnythingOfType("*model.UserEntity")).Return("act_1", nil).Once()
				f.userRepo.On("SetPersonaID", mock.Anything, uint64(1), "act_1").Return(nil).Once()
			},
			want: &model.UserResponse{ID: 1, FullName: "Ada Lovelace", Email: "ada@example.com", Status: "active"},
		},
		{
			name: "success: persona outage does not block registration",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(&model.UserEntity{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Status: constant.UserStatusActive}, nil).Once()
				f.identity.On("CreateAccount", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
			},
			want: &model.UserResponse{ID: 1, FullName: "Ada Lovelace", Email: "ada@example.com", Status: "active"},
		},
		{
			name: "error: email already exists",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).Return(&model.UserEntity{ID: 9}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Create returns error",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).Return(nil, errors.New("create failed")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Register(context.Background(), req)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if tt.wantErr {
				return
			}
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.FullName, got.FullName)
			assert.Equal(t, tt.want.Email, got.Email)
			assert.Equal(t, tt.want.Status, got.Status)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	phone := "15551234567"

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(t *testing.T, f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with phone registers device",
			req:  &model.LoginRequest{Input: phone, Password: "Secret#123", DeviceID: "dev-1", FCMToken: "fcm-1"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusActive, IsVerified: true,
				}, nil).Once()
				f.deviceRepo.On("Upsert", mock.Anything, &model.DeviceEntity{UserID: 1, DeviceID: "dev-1", FCMToken: "fcm-1"}).Return(nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: email fallback and welcome push for unverified user",
			req:  &model.LoginRequest{Input: "ada@example.com", Password: "Secret#123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "ada@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ada@example.com"}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusActive,
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
				f.notifier.On("PublishPush", mock.Anything, mock.MatchedBy(func(m rabbitmq.PushMessage) bool {
					return m.Title == "Welcome to heart2help" && m.Payload["event_code"] == constant.PushCodeGeneral &&
						len(m.UserIDs) == 1 && m.UserIDs[0] == 1
				})).Return(nil).Once()
			},
		},
		{
			name: "error: user not found",
			req:  &model.LoginRequest{Input: phone, Password: "Secret#123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: phone}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Input: phone, Password: "wrong"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusActive,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: inactive account",
			req:  &model.LoginRequest{Input: phone, Password: "Secret#123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusInactive,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountInactive,
		},
		{
			name: "error: session store fails",
			req:  &model.LoginRequest{Input: phone, Password: "Secret#123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusActive,
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			got, err := f.app().Login(context.Background(), tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if tt.wantErr {
				return
			}
			assert.NotEmpty(t, got.Token)
			assert.Equal(t, uint64(1), got.User.ID)
		})
	}
}

// login issues a real token and returns it with the session id it was stored under.
func login(t *testing.T, f fields) (string, string) {
	t.Helper()
	var jti string
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "15551234567"}).Return(&model.UserEntity{
		ID: 1, PasswordHash: hash(t, "Secret#123"), Status: constant.UserStatusActive, IsVerified: true,
	}, nil).Once()
	f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	resp, err := f.app().Login(context.Background(), &model.LoginRequest{Input: "15551234567", Password: "Secret#123"})
	require.NoError(t, err)
	return resp.Token, jti
}

func TestUserApp_ValidateToken(t *testing.T) {
	t.Run("success: session matches subject", func(t *testing.T) {
		f := newFields(t)
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(1), nil).Once()

		userID, err := f.app().ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), userID)
	})

	t.Run("error: session expired", func(t *testing.T) {
		f := newFields(t)
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), redisrepo.ErrNotFound).Once()

		_, err := f.app().ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: session belongs to someone else", func(t *testing.T) {
		f := newFields(t)
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(2), nil).Once()

		_, err := f.app().ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		f := newFields(t)
		token, _ := login(t, f)
		other := newFields(t)
		other.config.Auth.JWTSecret = "another-secret"

		_, err := other.app().ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().ValidateToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session and device removed", func(t *testing.T) {
		f := newFields(t)
		token, jti := login(t, f)
		f.redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()
		f.deviceRepo.On("Delete", mock.Anything, uint64(1), "dev-1").Return(nil).Once()

		err := f.app().Logout(context.Background(), 1, token, &model.LogoutRequest{DeviceID: "dev-1"})
		require.NoError(t, err)
	})

	t.Run("success: no device given", func(t *testing.T) {
		f := newFields(t)
		token, jti := login(t, f)
		f.redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

		err := f.app().Logout(context.Background(), 1, token, &model.LogoutRequest{})
		require.NoError(t, err)
	})

	t.Run("error: invalid token", func(t *testing.T) {
		f := newFields(t)
		err := f.app().Logout(context.Background(), 1, "bad", &model.LogoutRequest{})
		checkErr(t, err, true, constant.ErrUnauthorize)
	})
}

func TestUserApp_Me(t *testing.T) {
	f := newFields(t)
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
		ID: 1, FirstName: "Ada", LastName: "Lovelace", DOB: &dob, Status: constant.UserStatusActive,
	}, nil).Once()

	got, err := f.app().Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	require.NotNil(t, got.DOB)
	assert.Equal(t, "1990-05-17", *got.DOB)
}

func TestUserApp_SendOTP(t *testing.T) {
	phone := "15551234567"

	tests := []struct {
		name        string
		expose      bool
		mockCall    func(f fields)
		wantErr     bool
		errCode     constant.ErrorType
		wantMessage string
	}{
		{
			name: "success: sms sent then code stored",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(nil, nil).Once()
				f.sms.On("Send", mock.Anything, phone, mock.MatchedBy(func(msg string) bool {
					return strings.HasPrefix(msg, "Your phone verification code is ")
				})).Return(nil).Once()
				f.redisRepo.On("SetOTP", mock.Anything, uint64(1), mock.AnythingOfType("string"), 10*time.Minute).Return(nil).Once()
				f.userRepo.On("UpdatePhone", mock.Anything, uint64(1), phone).Return(nil).Once()
			},
			wantMessage: "Otp sent on " + phone + ".",
		},
		{
			name:   "success: own phone resent with code exposed",
			expose: true,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{ID: 1}, nil).Once()
				f.sms.On("Send", mock.Anything, phone, mock.Anything).Return(nil).Once()
				f.redisRepo.On("SetOTP", mock.Anything, uint64(1), mock.Anything, 10*time.Minute).Return(nil).Once()
				f.userRepo.On("UpdatePhone", mock.Anything, uint64(1), phone).Return(nil).Once()
			},
			wantMessage: "Otp sent on " + phone + ". and OTP is ",
		},
		{
			name: "error: phone owned by another user",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(&model.UserEntity{ID: 2}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: sms failure stores nothing",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: phone}).Return(nil, nil).Once()
				f.sms.On("Send", mock.Anything, phone, mock.Anything).Return(errors.New("twilio 500")).Once()
			},
			wantErr: true,
			errCode: constant.ErrExternalService,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.config.OTP.ExposeInMessage = tt.expose
			tt.mockCall(f)

			got, err := f.app().SendOTP(context.Background(), 1, &model.SendOTPRequest{Phone: phone})
			checkErr(t, err, tt.wantErr, tt.errCode)
			if tt.wantErr {
				return
			}
			assert.True(t, strings.HasPrefix(got, tt.wantMessage), got)
			if tt.expose {
				assert.Len(t, strings.TrimPrefix(got, tt.wantMessage), 6)
			}
		})
	}
}

func TestUserApp_VerifyOTP(t *testing.T) {
	personaID := "act_1"

	tests := []struct {
		name     string
		otp      string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: phone verified and persona synced",
			otp:  "123456",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("123456", nil).Once()
				f.userRepo.On("MarkPhoneVerified", mock.Anything, uint64(1), mock.AnythingOfType("time.Time")).Return(nil).Once()
				f.redisRepo.On("DeleteOTP", mock.Anything, uint64(1)).Return(nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1, PersonaID: &personaID}, nil).Once()
				f.identity.On("UpdateAccount", mock.Anything, "act_1", mock.AnythingOfType("*model.UserEntity")).Return(errors.New("persona down")).Once()
			},
		},
		{
			name: "error: code mismatch counts the attempt",
			otp:  "654321",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("123456", nil).Once()
				f.redisRepo.On("IncrOTPAttempts", mock.Anything, uint64(1), 10*time.Minute).Return(int64(2), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: fifth wrong code invalidates the otp",
			otp:  "654321",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("123456", nil).Once()
				f.redisRepo.On("IncrOTPAttempts", mock.Anything, uint64(1), 10*time.Minute).Return(int64(5), nil).Once()
				f.redisRepo.On("DeleteOTP", mock.Anything, uint64(1)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: attempt counter unavailable",
			otp:  "654321",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("123456", nil).Once()
				f.redisRepo.On("IncrOTPAttempts", mock.Anything, uint64(1), 10*time.Minute).Return(int64(0), errors.New("conn reset")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: code expired",
			otp:  "123456",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("", redisrepo.ErrNotFound).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: redis failure",
			otp:  "123456",
			mockCall: func(f fields) {
				f.redisRepo.On("GetOTP", mock.Anything, uint64(1)).Return("", errors.New("conn reset")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			err := f.app().VerifyOTP(context.Background(), 1, &model.VerifyOTPRequest{OTP: tt.otp})
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestUserApp_SetLatLng(t *testing.T) {
	lat, lng := 40.7, -74.0

	f := newFields(t)
	f.userRepo.On("UpdateLocation", mock.Anything, uint64(1), lat, lng).Return(nil).Once()
	require.NoError(t, f.app().SetLatLng(context.Background(), 1, &model.SetLatLngRequest{Latitude: &lat, Longitude: &lng}))

	f = newFields(t)
	f.userRepo.On("UpdateLocation", mock.Anything, uint64(1), lat, lng).Return(errors.New("db error")).Once()
	checkErr(t, f.app().SetLatLng(context.Background(), 1, &model.SetLatLngRequest{Latitude: &lat, Longitude: &lng}), true, constant.ErrInternal)
}

func TestUserApp_ConfirmIdentity(t *testing.T) {
	approved := func(accountID, referenceID string) *model.PersonaWebhookRequest {
		req := &model.PersonaWebhookRequest{}
		req.Data.Attributes.Name = "inquiry.approved"
		req.Data.Attributes.Payload.Data.Relationships.Account.Data.ID = accountID
		req.Data.Attributes.Payload.Data.Attributes.ReferenceID = referenceID
		return req
	}

	tests := []struct {
		name     string
		req      *model.PersonaWebhookRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: account marked verified",
			req:  approved("act_1", ""),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{PersonaID: "act_1"}).Return(&model.UserEntity{ID: 1}, nil).Once()
				f.userRepo.On("MarkVerified", mock.Anything, uint64(1), mock.AnythingOfType("time.Time")).Return(nil).Once()
				f.notifier.On("PublishPush", mock.Anything, mock.AnythingOfType("rabbitmq.PushMessage")).Return(nil).Once()
			},
		},
		{
			name: "success: reference id fallback on already verified user",
			req:  approved("", "1"),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1, IsVerified: true}, nil).Once()
			},
		},
		{
			name: "success: other events ignored",
			req: func() *model.PersonaWebhookRequest {
				r := approved("act_1", "")
				r.Data.Attributes.Name = "inquiry.created"
				return r
			}(),
		},
		{
			name:    "error: no account or reference",
			req:     approved("", ""),
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name: "error: unknown account",
			req:  approved("act_9", ""),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{PersonaID: "act_9"}).Return(nil, nil).Once()
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
			checkErr(t, f.app().ConfirmIdentity(context.Background(), tt.req), tt.wantErr, tt.errCode)
		})
	}
}
