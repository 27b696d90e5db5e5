package identity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"networknode/internal/logger"

	"github.com/goccy/go-json"
	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// GoTrueConfig - параметры клиента
type GoTrueConfig struct {
	URL        string
	AnonKey    string
	Timeout    time.Duration
	RetryCount int
	RetrySleep time.Duration
}

// GoTrueClient - REST клиент GoTrue (/auth/v1)
type GoTrueClient struct {
	baseURL string
	anonKey string
	client  heimdall.Doer
}

// NewGoTrueClient создает клиент с ретраями на сетевые ошибки и 5xx
func NewGoTrueClient(cfg GoTrueConfig) *GoTrueClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetrySleep <= 0 {
		cfg.RetrySleep = 200 * time.Millisecond
	}

	backoff := heimdall.NewConstantBackoff(cfg.RetrySleep, 50*time.Millisecond)
	retrier := heimdall.NewRetrier(backoff)

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(cfg.Timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(cfg.RetryCount),
	)

	return &GoTrueClient{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		anonKey: cfg.AnonKey,
		client:  client,
	}
}

type gotrueError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (c *GoTrueClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, "get_user", http.MethodGet, "/user", accessToken, nil, &user); err != nil {
		return nil, mapAuthError(err, ErrInvalidToken)
	}
	return &user, nil
}

func (c *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.do(ctx, "sign_in", http.MethodPost, "/token?grant_type=password", "", body, &session); err != nil {
		return nil, mapAuthError(err, ErrInvalidCredentials)
	}
	return &session, nil
}

// signUpResponse - GoTrue отдает либо сессию, либо сам объект пользователя
type signUpResponse struct {
	Session
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (c *GoTrueClient) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*SignUpResult, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	var resp signUpResponse
	if err := c.do(ctx, "sign_up", http.MethodPost, "/signup", "", body, &resp); err != nil {
		if apiErr, ok := err.(*APIError); ok && (apiErr.Status == http.StatusUnprocessableEntity || apiErr.Code == "user_already_exists") {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, apiErr.Message)
		}
		return nil, mapAuthError(err, ErrInvalidCredentials)
	}

	if resp.AccessToken != "" {
		s := resp.Session
		return &SignUpResult{User: s.User, Session: &s}, nil
	}
	return &SignUpResult{User: User{ID: resp.ID, Email: resp.Email}}, nil
}

func (c *GoTrueClient) AuthorizeURL(req OAuthRequest) (string, error) {
	if req.Provider == "" {
		return "", fmt.Errorf("identity: oauth provider is required")
	}

	q := url.Values{}
	q.Set("provider", req.Provider)
	if req.RedirectTo != "" {
		q.Set("redirect_to", req.RedirectTo)
	}
	if req.CodeChallenge != "" {
		q.Set("code_challenge", req.CodeChallenge)
		q.Set("code_challenge_method", "s256")
	}
	for k, v := range req.QueryParams {
		q.Set(k, v)
	}
	return c.baseURL + "/authorize?" + q.Encode(), nil
}

func (c *GoTrueClient) ExchangeCodeForSession(ctx context.Context, code, codeVerifier string) (*Session, error) {
	body := map[string]string{"auth_code": code, "code_verifier": codeVerifier}

	var session Session
	if err := c.do(ctx, "exchange_code", http.MethodPost, "/token?grant_type=pkce", "", body, &session); err != nil {
		return nil, mapAuthError(err, ErrInvalidToken)
	}
	return &session, nil
}

func (c *GoTrueClient) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var session Session
	if err := c.do(ctx, "refresh", http.MethodPost, "/token?grant_type=refresh_token", "", body, &session); err != nil {
		return nil, mapAuthError(err, ErrInvalidToken)
	}
	return &session, nil
}

func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	if err := c.do(ctx, "sign_out", http.MethodPost, "/logout", accessToken, nil, nil); err != nil {
		return mapAuthError(err, ErrInvalidToken)
	}
	return nil
}

func (c *GoTrueClient) do(ctx context.Context, op, method, path, bearer string, in, out interface{}) error {
	start := time.Now()

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		logger.IdentityLog(ctx, op, 0, time.Since(start), err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeAPIError(resp.StatusCode, data)
		logger.IdentityLog(ctx, op, resp.StatusCode, time.Since(start), apiErr)
		return apiErr
	}
	logger.IdentityLog(ctx, op, resp.StatusCode, time.Since(start), nil)

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("identity: decode %s response: %w", op, err)
	}
	return nil
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var e gotrueError
	if err := json.Unmarshal(body, &e); err != nil {
		return apiErr
	}

	apiErr.Code = firstNonEmpty(e.ErrorCode, e.Error)
	if msg := firstNonEmpty(e.ErrorDescription, e.Msg, e.Message); msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}

// mapAuthError превращает 4xx ответ в доменную ошибку, остальное отдает как есть
func mapAuthError(err error, clientErr error) error {
	apiErr, ok := err.(*APIError)
	if !ok {
		return err
	}
	if apiErr.Status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Error())
	}
	return fmt.Errorf("%w: %s", clientErr, apiErr.Message)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
