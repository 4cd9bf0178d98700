package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/pillyapp/accountd/internal/shared"
)

const maxRetries = 2

// HTTPClient talks JSON over HTTP to the accountd server.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	backoff func() retry.Backoff
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(maxRetries, retry.NewFibonacci(250*time.Millisecond))
		},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

// do performs a single JSON round trip and maps the response status to a
// sentinel error. Transport failures surface as shared.ErrorUnavailable so
// callers can distinguish "server said no" from "server not reachable".
func (c *HTTPClient) do(ctx context.Context, method string, path string, body any) (*messageResponse, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	var mr messageResponse
	_ = json.NewDecoder(resp.Body).Decode(&mr)

	if err := mapStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	return &mr, nil
}

// doRetry wraps do with exponential backoff; only unavailability is
// retried, server verdicts like 401 or 409 come back immediately. Register
// stays on the single-attempt path so a replayed request can not follow a
// success that the client never saw.
func (c *HTTPClient) doRetry(ctx context.Context, method string, path string, body any) (*messageResponse, error) {
	var mr *messageResponse
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		var err error
		mr, err = c.do(ctx, method, path, body)
		if errors.Is(err, shared.ErrorUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return mr, nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return shared.ErrorValidation
	case code == http.StatusUnauthorized:
		return shared.ErrorInvalidCredentials
	case code == http.StatusNotFound:
		return shared.ErrorNotFound
	case code == http.StatusConflict:
		return shared.ErrorEmailTaken
	case code == http.StatusTooManyRequests:
		return shared.ErrorTooManyAttempts
	case code >= 500:
		return shared.ErrorUnavailable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

func (c *HTTPClient) Register(ctx context.Context, email string, name string, password []byte) (string, error) {
	mr, err := c.do(ctx, http.MethodPost, "/register", registerRequest{Email: email, Password: string(password), Name: name})
	if err != nil {
		return "", err
	}
	return mr.UserID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*LoginResult, error) {
	mr, err := c.doRetry(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: mr.UserID, Token: mr.Token}, nil
}

func (c *HTTPClient) UpdateName(ctx context.Context, email string, name string) error {
	_, err := c.doRetry(ctx, http.MethodPut, "/update", updateRequest{Email: email, Name: name})
	return err
}

func (c *HTTPClient) ChangePassword(ctx context.Context, email string, current []byte, next []byte) error {
	_, err := c.doRetry(ctx, http.MethodPut, "/change-password", changePasswordRequest{
		Email:           email,
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	mr, err := c.doRetry(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return err
	}
	if mr.Message != "ok" {
		return shared.ErrorUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
