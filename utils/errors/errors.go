package errors

import "github.com/muhammadheryan/heart2help/constant"

// CustomError is the typed error every application operation returns. It carries
// its own HTTP status through constant.ErrorTypeHTTPCode.
type CustomError struct {
	errType constant.ErrorType
	message string
	fields  map[string]string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields returns field level validation messages, keyed by json field name.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

// WithMessage returns a copy with a user facing message override.
func (c CustomError) WithMessage(msg string) CustomError {
	c.message = msg
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// Is matches on error type so errors.Is works against SetCustomError values.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return t.errType == c.errType
}
