package shortener

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/utils"
)

// Client talks to an optional link-shortening service. A zero base URL leaves
// the client disabled and shortening is skipped entirely.
type Client struct {
	client *resty.Client
	apiKey string
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"short_url"`
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		return &Client{}
	}
	client := resty.New().SetBaseURL(baseURL).SetTimeout(timeout)
	logutils.Log.Infof("Initialized shortener client with baseURL: %s", baseURL)
	return &Client{client: client, apiKey: apiKey}
}

func (c *Client) Enabled() bool {
	return c.client != nil
}

func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	if !c.Enabled() {
		return "", utils.WrapError(utils.ErrConfigurationError, "shortener is not configured", nil)
	}

	req := c.client.R().
		SetContext(ctx).
		SetBody(shortenRequest{URL: longURL}).
		SetResult(&shortenResponse{})
	if c.apiKey != "" {
		req.SetHeader("X-Api-Key", c.apiKey)
	}

	resp, err := req.Post("/api/v1/links")
	if err != nil {
		return "", utils.WrapError(err, "shorten request failed", nil)
	}
	if resp.IsError() {
		return "", fmt.Errorf("shortener error: %s", resp.Status())
	}

	result, ok := resp.Result().(*shortenResponse)
	if !ok || result.ShortURL == "" {
		return "", utils.WrapError(utils.ErrExternalServiceError, "shortener returned no link", nil)
	}
	return result.ShortURL, nil
}
