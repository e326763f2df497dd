package user

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/heart2help/application/presenter"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	devicerepo "github.com/muhammadheryan/heart2help/repository/device"
	redisrepo "github.com/muhammadheryan/heart2help/repository/redis"
	userrepo "github.com/muhammadheryan/heart2help/repository/user"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/thirdparty/persona"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/thirdparty/twilio"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpDigits = 6

	personaInquiryApproved = "inquiry.approved"

	loginFailedMessage = "You have entered your email, phone number, or password incorrectly."
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, userID uint64, token string, req *model.LogoutRequest) error
	Me(ctx context.Context, userID uint64) (*model.UserResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	// SendOTP texts a verification code to req.Phone and returns the
	// confirmation message.
	SendOTP(ctx context.Context, userID uint64, req *model.SendOTPRequest) (string, error)
	VerifyOTP(ctx context.Context, userID uint64, req *model.VerifyOTPRequest) error
	SetLatLng(ctx context.Context, userID uint64, req *model.SetLatLngRequest) error
	// ConfirmIdentity applies a Persona verification callback.
	ConfirmIdentity(ctx context.Context, req *model.PersonaWebhookRequest) error
}

type UserAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	deviceRepo devicerepo.DeviceRepository
	redisRepo  redisrepo.Repository
	sms        twilio.SmsSender
	identity   persona.IdentityVerifier
	notifier   rabbitmq.Notifier
	presenter  *presenter.Presenter
	now        func() time.Time
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, deviceRepo devicerepo.DeviceRepository, redisRepo redisrepo.Repository, sms twilio.SmsSender, identity persona.IdentityVerifier, files cloudinary.FileStore, notifier rabbitmq.Notifier) UserApp {
	return &UserAppImpl{
		config:     config,
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		redisRepo:  redisRepo,
		sms:        sms,
		identity:   identity,
		notifier:   notifier,
		presenter:  presenter.New(files),
		now:        time.Now,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists).WithMessage("The email has already been taken.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Status:       constant.UserStatusActive,
		Type:         constant.UserTypeHelp,
	})
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the account is usable without a persona id; verification syncs it later
	personaID, err := s.identity.CreateAccount(ctx, userEntity)
	if err != nil {
		logger.Warn("[Register] err identity.CreateAccount", zap.Uint64("user_id", userEntity.ID), zap.String("error", err.Error()))
	} else if err := s.userRepo.SetPersonaID(ctx, userEntity.ID, personaID); err != nil {
		logger.Error("[Register] err userRepo.SetPersonaID", zap.String("error", err.Error()))
	} else {
		userEntity.PersonaID = &personaID
	}

	resp := s.presenter.User(userEntity)
	return &resp, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.findByInput(ctx, strings.TrimSpace(req.Input))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword).WithMessage(loginFailedMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword).WithMessage(loginFailedMessage)
	}

	if user.Status != constant.UserStatusActive {
		return nil, errors.SetCustomError(constant.ErrAccountInactive)
	}

	if req.DeviceID != "" && req.FCMToken != "" {
		err := s.deviceRepo.Upsert(ctx, &model.DeviceEntity{UserID: user.ID, DeviceID: req.DeviceID, FCMToken: req.FCMToken})
		if err != nil {
			logger.Error("[Login] err deviceRepo.Upsert", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if !user.IsVerified {
		msg := rabbitmq.PushMessage{
			Title:   "Welcome to heart2help",
			Body:    "Complete your account verification.",
			Payload: rabbitmq.PushPayload(constant.PushCodeGeneral, user.ID, ""),
			UserIDs: []uint64{user.ID},
		}
		if err := s.notifier.PublishPush(ctx, msg); err != nil {
			logger.Error("[Login] err notifier.PublishPush", zap.String("error", err.Error()))
		}
	}

	return &model.LoginResponse{
		Token: token,
		User:  s.presenter.User(user),
	}, nil
}

// findByInput resolves a login input, trying the phone number before the email.
func (s *UserAppImpl) findByInput(ctx context.Context, input string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: input})
	if err != nil {
		logger.Error("[Login] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Get(ctx, &model.UserFilter{Email: input})
	if err != nil {
		logger.Error("[Login] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, userID uint64, token string, req *model.LogoutRequest) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if req != nil && req.DeviceID != "" {
		if err := s.deviceRepo.Delete(ctx, userID, req.DeviceID); err != nil {
			logger.Error("[Logout] err deviceRepo.Delete", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *UserAppImpl) Me(ctx context.Context, userID uint64) (*model.UserResponse, error) {
	user, err := s.getUser(ctx, "[Me]", userID)
	if err != nil {
		return nil, err
	}
	resp := s.presenter.User(user)
	return &resp, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) SendOTP(ctx context.Context, userID uint64, req *model.SendOTPRequest) (string, error) {
	phone := strings.TrimSpace(req.Phone)
	owner, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: phone})
	if err != nil {
		logger.Error("[SendOTP] err userRepo.Get phone", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if owner != nil && owner.ID != userID {
		return "", errors.SetValidationError(map[string]string{"phone": "The phone has already been taken."})
	}

	code, err := generateOTP(otpDigits)
	if err != nil {
		logger.Error("[SendOTP] err generateOTP", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	// nothing is persisted until the SMS is accepted
	if err := s.sms.Send(ctx, phone, fmt.Sprintf("Your phone verification code is %s.", code)); err != nil {
		logger.Error("[SendOTP] err sms.Send", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrExternalService).WithMessage("Unable to send the verification code, please try again.")
	}

	if err := s.redisRepo.SetOTP(ctx, userID, code, s.config.OTP.TTL); err != nil {
		logger.Error("[SendOTP] err SetOTP", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.userRepo.UpdatePhone(ctx, userID, phone); err != nil {
		logger.Error("[SendOTP] err userRepo.UpdatePhone", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	message := "Otp sent on " + phone + "."
	if s.config.OTP.ExposeInMessage {
		message += " and OTP is " + code
	}
	return message, nil
}

func (s *UserAppImpl) VerifyOTP(ctx context.Context, userID uint64, req *model.VerifyOTPRequest) error {
	code, err := s.redisRepo.GetOTP(ctx, userID)
	if err != nil && !stderrors.Is(err, redisrepo.ErrNotFound) {
		logger.Error("[VerifyOTP] err GetOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if code == "" {
		return errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if code != req.OTP {
		return s.failOTP(ctx, userID)
	}

	if err := s.userRepo.MarkPhoneVerified(ctx, userID, s.now()); err != nil {
		logger.Error("[VerifyOTP] err userRepo.MarkPhoneVerified", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.redisRepo.DeleteOTP(ctx, userID); err != nil {
		logger.Warn("[VerifyOTP] err DeleteOTP", zap.String("error", err.Error()))
	}

	user, err := s.getUser(ctx, "[VerifyOTP]", userID)
	if err != nil {
		return err
	}
	if user.PersonaID != nil {
		if err := s.identity.UpdateAccount(ctx, *user.PersonaID, user); err != nil {
			logger.Warn("[VerifyOTP] err identity.UpdateAccount", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		}
	}
	return nil
}

// failOTP records a wrong guess and drops the code once the attempts run out.
func (s *UserAppImpl) failOTP(ctx context.Context, userID uint64) error {
	attempts, err := s.redisRepo.IncrOTPAttempts(ctx, userID, s.config.OTP.TTL)
	if err != nil {
		logger.Error("[VerifyOTP] err IncrOTPAttempts", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if attempts < s.config.OTP.MaxAttempts {
		return errors.SetCustomError(constant.ErrInvalidOTP)
	}

	logger.Warn("[VerifyOTP] otp attempts exhausted", zap.Uint64("user_id", userID), zap.Int64("attempts", attempts))
	if err := s.redisRepo.DeleteOTP(ctx, userID); err != nil {
		logger.Error("[VerifyOTP] err DeleteOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return errors.SetCustomError(constant.ErrInvalidOTP).WithMessage("Too many attempts. Please request a new code.")
}

func (s *UserAppImpl) SetLatLng(ctx context.Context, userID uint64, req *model.SetLatLngRequest) error {
	if err := s.userRepo.UpdateLocation(ctx, userID, *req.Latitude, *req.Longitude); err != nil {
		logger.Error("[SetLatLng] err userRepo.UpdateLocation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ConfirmIdentity(ctx context.Context, req *model.PersonaWebhookRequest) error {
	event := req.Data.Attributes
	if event.Name != personaInquiryApproved {
		logger.Debug("[ConfirmIdentity] ignored event", zap.String("event", event.Name))
		return nil
	}

	filter := &model.UserFilter{PersonaID: event.Payload.Data.Relationships.Account.Data.ID}
	if filter.PersonaID == "" {
		id, err := strconv.ParseUint(event.Payload.Data.Attributes.ReferenceID, 10, 64)
		if err != nil {
			return errors.SetValidationError(map[string]string{"reference-id": "The reference-id is invalid."})
		}
		filter.ID = id
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[ConfirmIdentity] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if user.IsVerified {
		return nil
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID, s.now()); err != nil {
		logger.Error("[ConfirmIdentity] err userRepo.MarkVerified", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	msg := rabbitmq.PushMessage{
		Title:   "Account verified",
		Body:    "Your identity has been verified.",
		Payload: rabbitmq.PushPayload(constant.PushCodeGeneral, user.ID, ""),
		UserIDs: []uint64{user.ID},
	}
	if err := s.notifier.PublishPush(ctx, msg); err != nil {
		logger.Error("[ConfirmIdentity] err notifier.PublishPush", zap.String("error", err.Error()))
	}
	return nil
}

func (s *UserAppImpl) getUser(ctx context.Context, op string, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func generateOTP(digits int) (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < digits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
