package identity

import (
	"context"
	"net/url"
	"sync"
)

// MockProvider - провайдер в памяти для тестов и локальной разработки.
// Токен доступа - строка "token-<user id>", refresh - "refresh-<user id>".
type MockProvider struct {
	mu sync.Mutex

	Users     map[string]User   // id -> user
	Passwords map[string]string // email -> password
	Codes     map[string]string // oauth code -> user id

	// Err, если задан, возвращается из всех сетевых методов
	Err error

	Calls []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Users:     map[string]User{},
		Passwords: map[string]string{},
		Codes:     map[string]string{},
	}
}

// SetMetadata заменяет user_metadata, как после OAuth-входа
func (m *MockProvider) SetMetadata(id string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.Users[id]
	u.ID = id
	u.UserMetadata = metadata
	m.Users[id] = u
}

// AddUser регистрирует пользователя с паролем
func (m *MockProvider) AddUser(id, email, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[id] = User{ID: id, Email: email}
	m.Passwords[email] = password
}

// CallCount возвращает количество вызовов метода
func (m *MockProvider) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *MockProvider) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
	return m.Err
}

func (m *MockProvider) sessionFor(u User) *Session {
	return &Session{
		AccessToken:  "token-" + u.ID,
		RefreshToken: "refresh-" + u.ID,
		TokenType:    "bearer",
		ExpiresIn:    3600,
		User:         u,
	}
}

func (m *MockProvider) userByPrefix(prefix, token string) (*User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, false
	}
	u, ok := m.Users[token[len(prefix):]]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (m *MockProvider) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if err := m.record("GetUser"); err != nil {
		return nil, err
	}
	u, ok := m.userByPrefix("token-", accessToken)
	if !ok {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func (m *MockProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	if err := m.record("SignInWithPassword"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if pw, ok := m.Passwords[email]; !ok || pw != password {
		return nil, ErrInvalidCredentials
	}
	for _, u := range m.Users {
		if u.Email == email {
			return m.sessionFor(u), nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (m *MockProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*SignUpResult, error) {
	if err := m.record("SignUp"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Passwords[email]; exists {
		return nil, ErrUserExists
	}
	u := User{ID: "user-" + email, Email: email, UserMetadata: metadata}
	m.Users[u.ID] = u
	m.Passwords[email] = password
	return &SignUpResult{User: u, Session: m.sessionFor(u)}, nil
}

func (m *MockProvider) AuthorizeURL(req OAuthRequest) (string, error) {
	q := url.Values{}
	q.Set("provider", req.Provider)
	q.Set("redirect_to", req.RedirectTo)
	for k, v := range req.QueryParams {
		q.Set(k, v)
	}
	return "https://identity.test/authorize?" + q.Encode(), nil
}

func (m *MockProvider) ExchangeCodeForSession(ctx context.Context, code, codeVerifier string) (*Session, error) {
	if err := m.record("ExchangeCodeForSession"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.Codes[code]
	if !ok {
		return nil, ErrInvalidToken
	}
	return m.sessionFor(m.Users[id]), nil
}

func (m *MockProvider) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	if err := m.record("RefreshSession"); err != nil {
		return nil, err
	}
	u, ok := m.userByPrefix("refresh-", refreshToken)
	if !ok {
		return nil, ErrInvalidToken
	}
	return m.sessionFor(*u), nil
}

func (m *MockProvider) SignOut(ctx context.Context, accessToken string) error {
	return m.record("SignOut")
}
