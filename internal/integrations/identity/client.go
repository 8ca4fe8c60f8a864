package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для проверки федеративных токенов через внешний
// identity-провайдер (token exchange endpoint)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр identity клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyToken проверяет федеративный токен и возвращает профиль пользователя.
// Непринятый токен возвращается как ErrTokenRejected, неизвестный провайдер —
// как ErrUnknownProvider.
func (c *Client) VerifyToken(ctx context.Context, provider, token string) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/identity/verify", c.baseURL)

	payload, err := json.Marshal(verifyRequest{Provider: provider, Token: token})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		c.log.Warn("VerifyToken: provider=%s rejected token", provider)
		return nil, ErrTokenRejected
	case http.StatusBadRequest:
		return nil, ErrUnknownProvider
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if profile.SubjectID == "" || profile.Email == "" {
		return nil, fmt.Errorf("%w: profile is missing subject id or email", ErrInvalidResponse)
	}

	c.log.Info("VerifyToken: provider=%s verified subject=%s", provider, profile.SubjectID)
	return &profile, nil
}
