package persona_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/thirdparty/persona"
	"github.com/muhammadheryan/heart2help/utils/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = retry.Config{MaxRetries: 1, InitialInterval: time.Millisecond, MaxElapsedTime: time.Second}

func TestClient_CreateAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "Bearer persona-key", r.Header.Get("Authorization"))

		var body map[string]map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		attrs := body["data"]["attributes"]
		assert.Equal(t, "42", attrs["reference-id"])
		assert.Equal(t, "Ada", attrs["name-first"])
		assert.Equal(t, "ada@example.com", attrs["email-address"])

		_, _ = w.Write([]byte(`{"data":{"id":"act_123"}}`))
	}))
	defer srv.Close()

	c := persona.NewClient(srv.URL, "persona-key", fastRetry)
	id, err := c.CreateAccount(context.Background(), &model.UserEntity{ID: 42, FirstName: "Ada", LastName: "L", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "act_123", id)
}

func TestClient_UpdateAccount(t *testing.T) {
	phone := "+15550001111"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/accounts/act_123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := persona.NewClient(srv.URL, "persona-key", fastRetry)
	assert.NoError(t, c.UpdateAccount(context.Background(), "act_123", &model.UserEntity{ID: 42, PhoneNumber: &phone}))
	assert.Error(t, c.UpdateAccount(context.Background(), "", &model.UserEntity{ID: 42}))
}
