// Package grammar wraps the LanguageTool HTTP API. Only the issue count
// is consumed; match details are discarded.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resufit/resufit/internal/utils"
	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.languagetool.org"
	checkPath = "/v2/check"
	language  = "en-US"

	// The public endpoint rejects large payloads, and issue density in
	// the opening characters is representative enough for scoring.
	maxCheckLength = 2000

	maxAttempts       = 3
	defaultRetryDelay = 2 * time.Second
)

type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
	} `json:"matches"`
}

// Client talks to a LanguageTool server.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	RetryDelay time.Duration

	// Premium accounts raise the rate limits on the hosted service.
	username string
	apiKey   string
}

// New builds a client against the public LanguageTool endpoint.
func New(logger *zap.Logger) *Client {
	return &Client{
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		RetryDelay: defaultRetryDelay,
	}
}

// WithCredentials attaches premium account credentials to every check.
func (c *Client) WithCredentials(username, apiKey string) *Client {
	c.username = username
	c.apiKey = apiKey
	return c
}

// IssueCount checks the first part of the text and returns the number
// of reported matches. The public endpoint rate-limits aggressively, so
// transient failures are retried a few times before giving up.
func (c *Client) IssueCount(ctx context.Context, text string) (int, error) {
	var count int
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		count, err = c.check(ctx, text)
		if err == nil {
			return count, nil
		}

		if attempt == maxAttempts {
			break
		}

		c.logger.Debug("grammar check failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if waitErr := utils.WaitFor(ctx, c.RetryDelay); waitErr != nil {
			return 0, waitErr
		}
	}
	return 0, err
}

func (c *Client) check(ctx context.Context, text string) (int, error) {
	if runes := []rune(text); len(runes) > maxCheckLength {
		text = string(runes[:maxCheckLength])
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", language)
	if c.username != "" {
		form.Set("username", c.username)
		form.Set("apiKey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+checkPath, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.Int("text_length", len(text)))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, err
	}

	c.logger.Debug("got response from LanguageTool", zap.Int("matches", len(response.Matches)))

	return len(response.Matches), nil
}
