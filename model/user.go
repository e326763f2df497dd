package model

import (
	"time"

	"github.com/muhammadheryan/heart2help/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID                       uint64              `db:"id" json:"id"`
	FirstName                string              `db:"first_name" json:"first_name"`
	LastName                 string              `db:"last_name" json:"last_name"`
	Email                    string              `db:"email" json:"email"`
	PasswordHash             string              `db:"password" json:"-"`
	Status                   constant.UserStatus `db:"status" json:"status"`
	ProfilePicture           *string             `db:"profile_picture" json:"profile_picture"`
	PhoneNumber              *string             `db:"phone_number" json:"phone_number"`
	IsPhoneVerified          bool                `db:"is_phone_verified" json:"is_phone_verified"`
	PhoneVerifiedAt          *time.Time          `db:"phone_verified_at" json:"phone_verified_at"`
	IsVerified               bool                `db:"is_verified" json:"is_verified"`
	VerifiedAt               *time.Time          `db:"verified_at" json:"verified_at"`
	DOB                      *time.Time          `db:"dob" json:"dob"`
	IsAdmin                  bool                `db:"is_admin" json:"-"`
	Type                     constant.UserType   `db:"type" json:"type"`
	Latitude                 *float64            `db:"latitude" json:"latitude"`
	Longitude                *float64            `db:"longitude" json:"longitude"`
	PersonaID                *string             `db:"persona_id" json:"-"`
	PushNotification         bool                `db:"push_notification" json:"push_notification"`
	SMSNotification          bool                `db:"sms_notification" json:"sms_notification"`
	HelpsPushNotification    bool                `db:"helps_push_notification" json:"helps_push_notification"`
	HelpsSMSNotification     bool                `db:"helps_sms_notification" json:"helps_sms_notification"`
	RequestsPushNotification bool                `db:"requests_push_notification" json:"requests_push_notification"`
	RequestsSMSNotification  bool                `db:"requests_sms_notification" json:"requests_sms_notification"`
	CreatedAt                time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt                *time.Time          `db:"updated_at" json:"-"`
}

func (u *UserEntity) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserFilter for querying users
type UserFilter struct {
	ID        uint64
	Email     string
	Phone     string
	PersonaID string
}

// UserSummary is the author/helper shape embedded in post views.
type UserSummary struct {
	ID             uint64              `db:"id" json:"id"`
	FirstName      string              `db:"first_name" json:"first_name"`
	LastName       string              `db:"last_name" json:"last_name"`
	Email          string              `db:"email" json:"email"`
	ProfilePicture *string             `db:"profile_picture" json:"profile_picture"`
	Status         constant.UserStatus `db:"status" json:"status,omitempty"`
	Type           constant.UserType   `db:"type" json:"type,omitempty"`
}

// UserProfileEntity is a user row with help/feedback counters.
type UserProfileEntity struct {
	UserSummary
	IsVerified bool  `db:"is_verified"`
	TotalHelps int64 `db:"total_helps"`
	ThumbsUp   int64 `db:"thumbs_up"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	FirstName            string `json:"first_name" validate:"required,max=100"`
	LastName             string `json:"last_name" validate:"required,max=100"`
	Email                string `json:"email" validate:"required,email,max=100"`
	Password             string `json:"password" validate:"required,min=8,strongpassword"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Input    string `json:"input" validate:"required"` // email or phone
	Password string `json:"password" validate:"required"`
	DeviceID string `json:"device_id"`
	FCMToken string `json:"fcm_token"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type LogoutRequest struct {
	DeviceID string `json:"device_id"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

type SetLatLngRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UserResponse is the authenticated user's own view.
type UserResponse struct {
	ID                       uint64     `json:"id"`
	FirstName                string     `json:"first_name"`
	LastName                 string     `json:"last_name"`
	FullName                 string     `json:"full_name"`
	Email                    string     `json:"email"`
	Status                   string     `json:"status"`
	ProfilePicture           *string    `json:"profile_picture"`
	PhoneNumber              *string    `json:"phone_number"`
	IsPhoneVerified          bool       `json:"is_phone_verified"`
	PhoneVerifiedAt          *time.Time `json:"phone_verified_at"`
	IsVerified               bool       `json:"is_verified"`
	VerifiedAt               *time.Time `json:"verified_at"`
	DOB                      *string    `json:"dob"`
	Type                     string     `json:"type"`
	Latitude                 *float64   `json:"latitude"`
	Longitude                *float64   `json:"longitude"`
	PushNotification         bool       `json:"push_notification"`
	SMSNotification          bool       `json:"sms_notification"`
	HelpsPushNotification    bool       `json:"helps_push_notification"`
	HelpsSMSNotification     bool       `json:"helps_sms_notification"`
	RequestsPushNotification bool       `json:"requests_push_notification"`
	RequestsSMSNotification  bool       `json:"requests_sms_notification"`
	CreatedAt                string     `json:"created_at"`
}

// ProfileUser is the public user card on the profile screen.
type ProfileUser struct {
	ID             uint64  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	IsVerified     bool    `json:"is_verified"`
	TotalHelps     int64   `json:"total_helps"`
	ThumbsUp       int64   `json:"thumbs_up"`
}

type UserProfileRequest struct {
	Page      int      `schema:"page" validate:"omitempty,min=1"`
	Limit     int      `schema:"limit" validate:"omitempty,min=1"`
	Latitude  *float64 `schema:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `schema:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type UserProfileResponse struct {
	User       ProfileUser        `json:"user"`
	Categories []CategoryResponse `json:"categories"`
	Posts      PostCollection     `json:"posts"`
}

// PersonaWebhookRequest is the subset of a Persona event the verification
// callback reads.
type PersonaWebhookRequest struct {
	Data struct {
		Attributes struct {
			Name    string `json:"name" validate:"required"`
			Payload struct {
				Data struct {
					Type       string `json:"type"`
					ID         string `json:"id"`
					Attributes struct {
						Status      string `json:"status"`
						ReferenceID string `json:"reference-id"`
					} `json:"attributes"`
					Relationships struct {
						Account struct {
							Data struct {
								ID string `json:"id"`
							} `json:"data"`
						} `json:"account"`
					} `json:"relationships"`
				} `json:"data"`
			} `json:"payload"`
		} `json:"attributes"`
	} `json:"data"`
}

// DeviceEntity is a push endpoint registered on login.
type DeviceEntity struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	DeviceID  string    `db:"device_id"`
	FCMToken  string    `db:"fcm_token"`
	CreatedAt time.Time `db:"created_at"`
}
