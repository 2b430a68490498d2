package userdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultTimeout = 5 * time.Second

	getUserPath = "%s/api/v1/users/%d"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Client - HTTP-клиент каталога пользователей
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
}

func NewClient(baseURL string, timeout time.Duration, logger Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetUser получает профиль пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf(getUserPath, c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUser - build request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[Integrations][UserDirectory] GetUser request failed: userID=%d, err=%v", userID, err)
		return nil, fmt.Errorf("%w: GetUser - do request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// продолжаем обработку
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: userID=%d", ErrUserNotFound, userID)
	default:
		c.logger.Warn("[Integrations][UserDirectory] GetUser unexpected status: userID=%d, status=%d", userID, resp.StatusCode)
		return nil, fmt.Errorf("%w: GetUser - unexpected status %d", ErrInternal, resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: GetUser - decode body: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}

// GetProvider получает профиль пользователя и проверяет роль исполнителя
func (c *Client) GetProvider(ctx context.Context, providerID int64) (*User, error) {
	user, err := c.GetUser(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if !user.IsProvider() {
		return nil, fmt.Errorf("%w: userID=%d, role=%s", ErrNotAProvider, providerID, user.Role)
	}

	return user, nil
}
