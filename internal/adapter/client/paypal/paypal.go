package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"go.uber.org/zap"
)

// tokenSlack renews the access token this long before PayPal expires it.
const tokenSlack = time.Minute

const issueAlreadyCaptured = "ORDER_ALREADY_CAPTURED"

// Client talks to the PayPal Orders v2 REST API. It is safe for concurrent use;
// the only shared state is the cached access token.
type Client struct {
	conf      *config.PayPal
	base      string
	returnURL string
	cancelURL string
	http      *http.Client
	logger    *zap.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewClient(conf *config.PayPal, publicURL string, httpClient *http.Client, log *zap.Logger) (*Client, error) {
	if conf.ClientID == "" || conf.Secret == "" {
		return nil, fmt.Errorf("paypal client id and secret are required")
	}
	publicURL = strings.TrimRight(publicURL, "/")
	return &Client{
		conf:      conf,
		base:      strings.TrimRight(conf.APIBase(), "/"),
		returnURL: publicURL + "/return",
		cancelURL: publicURL + "/cancel",
		http:      httpClient,
		logger:    log,
	}, nil
}

type errorDetail struct {
	Issue       string `json:"issue"`
	Description string `json:"description"`
}

// APIError is a non-2xx answer from PayPal.
type APIError struct {
	StatusCode int
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	DebugID    string        `json:"debug_id"`
	Details    []errorDetail `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal: %d %s: %s (debug id %s)", e.StatusCode, e.Name, e.Message, e.DebugID)
}

func (e *APIError) hasIssue(issue string) bool {
	for _, d := range e.Details {
		if d.Issue == issue {
			return true
		}
	}
	return false
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.conf.ClientID, c.conf.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result tokenResponse
	err = c.do(req, &result)
	if err != nil {
		return "", fmt.Errorf("error requesting access token: %w", err)
	}

	c.token = result.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenSlack)
	c.logger.Debug("Access token refreshed", zap.Time("expires_at", c.expiresAt))
	return c.token, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any, headers map[string]string) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("error on %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s: %w", req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		c.logger.Debug("Unexpected status",
			zap.String("path", req.URL.Path), zap.Int("status", resp.StatusCode), zap.String("debug_id", apiErr.DebugID))
		return apiErr
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}
