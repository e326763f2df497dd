package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("strongpassword", strongPassword)
}

// strongPassword requires an upper case letter, a digit, a symbol and no spaces.
func strongPassword(fl gpvalidator.FieldLevel) bool {
	var upper, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && r != '_':
			symbol = true
		}
	}
	return upper && digit && symbol
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors turns validator errors into one message per json field.
func FieldErrors(err error) map[string]string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s should contain min %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s should contain max %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("The %s must be at most %s.", fe.Field(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("Invalid %s range.", fe.Field())
	case "oneof":
		return fmt.Sprintf("The %s should be one of %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ","))
	case "email":
		return "The email must be a valid email address."
	case "len":
		return fmt.Sprintf("The %s must be %s characters long.", fe.Field(), fe.Param())
	case "strongpassword":
		return "The password must contain at least one uppercase, numerical & special characters."
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", fe.Param())
	}
	return fmt.Sprintf("The %s is invalid.", fe.Field())
}
