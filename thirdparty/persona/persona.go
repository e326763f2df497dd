// Package persona keeps Persona identity accounts in step with local users.
package persona

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/retry"
)

type IdentityVerifier interface {
	// CreateAccount registers user and returns the Persona account id.
	CreateAccount(ctx context.Context, user *model.UserEntity) (string, error)
	UpdateAccount(ctx context.Context, accountID string, user *model.UserEntity) error
}

type Client struct {
	baseURL string
	apiKey  string
	retry   retry.Config
	http    *http.Client
}

func NewClient(baseURL, apiKey string, cfg retry.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		retry:   cfg,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type accountAttributes struct {
	ReferenceID  string  `json:"reference-id,omitempty"`
	NameFirst    string  `json:"name-first"`
	NameLast     string  `json:"name-last"`
	EmailAddress string  `json:"email-address"`
	PhoneNumber  *string `json:"phone-number,omitempty"`
}

type accountRequest struct {
	Data struct {
		Attributes accountAttributes `json:"attributes"`
	} `json:"data"`
}

type accountResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func newAccountRequest(user *model.UserEntity, withReference bool) accountRequest {
	var req accountRequest
	req.Data.Attributes = accountAttributes{
		NameFirst:    user.FirstName,
		NameLast:     user.LastName,
		EmailAddress: user.Email,
		PhoneNumber:  user.PhoneNumber,
	}
	if withReference {
		req.Data.Attributes.ReferenceID = strconv.FormatUint(user.ID, 10)
	}
	return req
}

func (c *Client) CreateAccount(ctx context.Context, user *model.UserEntity) (string, error) {
	var out accountResponse
	if err := c.do(ctx, http.MethodPost, "/accounts", newAccountRequest(user, true), &out); err != nil {
		return "", err
	}
	return out.Data.ID, nil
}

func (c *Client) UpdateAccount(ctx context.Context, accountID string, user *model.UserEntity) error {
	if accountID == "" {
		return fmt.Errorf("persona: empty account id for user %d", user.ID)
	}
	return c.do(ctx, http.MethodPatch, "/accounts/"+accountID, newAccountRequest(user, false), nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return retry.Do(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("persona: %s %s returned status %d", method, path, resp.StatusCode)
		}
		if resp.StatusCode >= 300 {
			return retry.Permanent(fmt.Errorf("persona: %s %s returned status %d", method, path, resp.StatusCode))
		}
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Permanent(err)
		}
		return nil
	})
}
