// Package twilio sends SMS through the Twilio Messages API.
package twilio

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/heart2help/utils/retry"
	twiliogo "github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SmsSender delivers a text message, returning an error carrying the provider's reason.
type SmsSender interface {
	Send(ctx context.Context, to, message string) error
}

// messageCreator is satisfied by *openapi.ApiService.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type Client struct {
	api   messageCreator
	from  string
	retry retry.Config
}

func NewClient(accountSID, authToken, from string, cfg retry.Config) *Client {
	rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newClient(rest.Api, from, cfg)
}

func newClient(api messageCreator, from string, cfg retry.Config) *Client {
	return &Client{api: api, from: from, retry: cfg}
}

// Send retries only rate limited requests. Any other failure may already have
// queued the message, so it is returned as is.
func (c *Client) Send(ctx context.Context, to, message string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(message)

	return retry.Do(ctx, c.retry, func() error {
		_, err := c.api.CreateMessage(params)
		if err == nil {
			return nil
		}

		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			sendErr := fmt.Errorf("twilio: %s (status %d, code %d)", restErr.Message, restErr.Status, restErr.Code)
			if restErr.Status == http.StatusTooManyRequests {
				return sendErr
			}
			return retry.Permanent(sendErr)
		}
		return retry.Permanent(fmt.Errorf("twilio: %w", err))
	})
}
