package blacklist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const karmaPath = "verification/karma/"

// Client looks identities up against an external blacklist provider. A 200
// means the identity is on the list, a 404 means it is clear; transient
// failures are retried with exponential backoff.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a blacklist client for the given provider.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsBlacklisted reports whether the identity (email or phone number) appears
// on the provider's blacklist.
func (c *Client) IsBlacklisted(ctx context.Context, identity string) (bool, error) {
	endpoint := c.baseURL + karmaPath + url.PathEscape(identity)

	var listed bool

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}()

		switch {
		case resp.StatusCode == http.StatusOK:
			listed = true
			return nil
		case resp.StatusCode == http.StatusNotFound:
			listed = false
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("blacklist provider returned %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("blacklist provider returned %d", resp.StatusCode))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return false, err
	}

	return listed, nil
}
