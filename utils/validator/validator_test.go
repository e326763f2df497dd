package validatorx_test

import (
	"testing"

	validatorx "github.com/muhammadheryan/heart2help/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string   `json:"title" validate:"required,min=2,max=200"`
	Latitude *float64 `schema:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Status   string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func TestFieldErrors(t *testing.T) {
	lat := 91.0
	err := validatorx.ValidateStruct(&sample{Title: "a", Latitude: &lat, Status: "done"})
	require.Error(t, err)

	fields := validatorx.FieldErrors(err)
	assert.Equal(t, "The title should contain min 2 characters.", fields["title"])
	assert.Equal(t, "Invalid latitude range.", fields["latitude"])
	assert.Equal(t, "The status should be one of active,inactive.", fields["status"])
}

func TestValidateStruct_OK(t *testing.T) {
	lat := 40.0
	assert.NoError(t, validatorx.ValidateStruct(&sample{Title: "help", Latitude: &lat}))
}

func TestStrongPassword(t *testing.T) {
	type register struct {
		Password string `json:"password" validate:"required,min=8,strongpassword"`
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "upper digit symbol", password: "Secret#123", wantErr: false},
		{name: "missing symbol", password: "Secret1234", wantErr: true},
		{name: "missing upper", password: "secret#123", wantErr: true},
		{name: "contains space", password: "Secret #123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&register{Password: tt.password})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "The password must contain at least one uppercase, numerical & special characters.", validatorx.FieldErrors(err)["password"])
		})
	}
}
