package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrValidation
	ErrForbidden
	ErrConflict
	ErrExternalService
	ErrAccountInactive
	ErrInvalidOTP
	ErrInvalidStatusTransition
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "you have entered your email, phone number, or password incorrectly",
	ErrValidation:              "validation failed",
	ErrForbidden:               "you don't have access",
	ErrConflict:                "data already exists",
	ErrExternalService:         "external service unavailable",
	ErrAccountInactive:         "your account has been archived, please contact admin for assistance",
	ErrInvalidOTP:              "the otp you entered is invalid",
	ErrInvalidStatusTransition: "status transition not allowed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusUnprocessableEntity,
	ErrInvalidPassword:         http.StatusUnprocessableEntity,
	ErrValidation:              http.StatusUnprocessableEntity,
	ErrForbidden:               http.StatusUnprocessableEntity,
	ErrConflict:                http.StatusUnprocessableEntity,
	ErrExternalService:         http.StatusBadGateway,
	ErrAccountInactive:         http.StatusUnprocessableEntity,
	ErrInvalidOTP:              http.StatusUnprocessableEntity,
	ErrInvalidStatusTransition: http.StatusUnprocessableEntity,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrValidation:              "0007",
	ErrForbidden:               "0008",
	ErrConflict:                "0009",
	ErrExternalService:         "0010",
	ErrAccountInactive:         "0011",
	ErrInvalidOTP:              "0012",
	ErrInvalidStatusTransition: "0013",
}
