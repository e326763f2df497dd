package twilio

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/muhammadheryan/heart2help/utils/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var fastRetry = retry.Config{MaxRetries: 2, InitialInterval: time.Millisecond, MaxElapsedTime: time.Second}

// fakeMessages returns errs in order, then succeeds.
type fakeMessages struct {
	calls  int
	params []*openapi.CreateMessageParams
	errs   []error
}

func (f *fakeMessages) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.calls++
	f.params = append(f.params, params)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func TestClient_Send(t *testing.T) {
	api := &fakeMessages{}
	c := newClient(api, "+15559990000", fastRetry)

	require.NoError(t, c.Send(context.Background(), "+15550001111", "Your phone verification code is 123456."))
	require.Len(t, api.params, 1)
	assert.Equal(t, "+15550001111", *api.params[0].To)
	assert.Equal(t, "+15559990000", *api.params[0].From)
	assert.Equal(t, "Your phone verification code is 123456.", *api.params[0].Body)
}

func TestClient_Send_Errors(t *testing.T) {
	invalidNumber := &twilioclient.TwilioRestError{
		Status:  http.StatusBadRequest,
		Code:    21211,
		Message: "The 'To' number is not a valid phone number.",
	}
	rateLimited := &twilioclient.TwilioRestError{Status: http.StatusTooManyRequests, Code: 20429, Message: "Too Many Requests"}
	serverError := &twilioclient.TwilioRestError{Status: http.StatusServiceUnavailable, Code: 20500, Message: "Service Unavailable"}

	tests := []struct {
		name      string
		errs      []error
		wantErr   bool
		wantCalls int
		wantMsg   string
	}{
		{
			name:      "invalid number is not retried",
			errs:      []error{invalidNumber},
			wantErr:   true,
			wantCalls: 1,
			wantMsg:   "The 'To' number is not a valid phone number.",
		},
		{
			name:      "server error is not retried",
			errs:      []error{serverError},
			wantErr:   true,
			wantCalls: 1,
			wantMsg:   "status 503",
		},
		{
			name:      "network failure is not retried",
			errs:      []error{errors.New("connection reset by peer")},
			wantErr:   true,
			wantCalls: 1,
			wantMsg:   "connection reset by peer",
		},
		{
			name:      "rate limit is retried until it passes",
			errs:      []error{rateLimited},
			wantCalls: 2,
		},
		{
			name:      "rate limit gives up after max retries",
			errs:      []error{rateLimited, rateLimited, rateLimited},
			wantErr:   true,
			wantCalls: 3,
			wantMsg:   "Too Many Requests",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeMessages{errs: tt.errs}
			c := newClient(api, "+1555", fastRetry)

			err := c.Send(context.Background(), "+15550001111", "hi")
			assert.Equal(t, tt.wantCalls, api.calls)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
