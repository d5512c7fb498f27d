package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"folio/internal/providers"
	"folio/internal/structures"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAuthNotConfigured   = errors.New("owner account is not configured")
	ErrSessionNotFound     = errors.New("session not found")
	defaultSessionTTL      = 24 * time.Hour
	minSessionCacheSizeMiB = 1
)

type User struct {
	Email string `json:"email"`
}

type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthServiceInterface interface {
	SignIn(email, password string) (*Session, error)
	SignOut(token string) error
	CurrentUser(token string) (*User, bool)
}

// AuthService verifies the single owner account and keeps opaque session
// tokens in a TTL cache. Sessions do not survive a restart.
type AuthService struct {
	ownerEmail   string
	passwordHash []byte
	ttl          time.Duration
	sessions     *freecache.Cache
	logger       providers.Logger
	now          func() time.Time
}

func NewAuthService(conf *structures.Config, logger providers.Logger) AuthServiceInterface {
	ttl := conf.Auth.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	size := max(conf.Auth.CacheSize, minSessionCacheSizeMiB)

	if conf.Auth.OwnerEmail == "" || conf.Auth.PasswordHash == "" {
		logger.Warnf(providers.TypeApp, "Owner account not configured, admin sign-in is disabled")
	}

	return &AuthService{
		ownerEmail:   conf.Auth.OwnerEmail,
		passwordHash: []byte(conf.Auth.PasswordHash),
		ttl:          ttl,
		sessions:     freecache.NewCache(size * 1024 * 1024),
		logger:       logger,
		now:          time.Now,
	}
}

func (a *AuthService) SignIn(email, password string) (*Session, error) {
	if a.ownerEmail == "" || len(a.passwordHash) == 0 {
		return nil, ErrAuthNotConfigured
	}

	emailOK := strings.EqualFold(strings.TrimSpace(email), a.ownerEmail)
	// The hash is compared even when the email does not match.
	hashErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !emailOK || hashErr != nil {
		a.logger.Warnf(providers.TypeAdmin, "Failed sign-in for %q", email)
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := a.sessions.Set([]byte(token), []byte(a.ownerEmail), int(a.ttl.Seconds())); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	a.logger.Infof(providers.TypeAdmin, "Owner signed in")
	return &Session{
		Token:     token,
		User:      User{Email: a.ownerEmail},
		ExpiresAt: a.now().Add(a.ttl).UTC(),
	}, nil
}

func (a *AuthService) SignOut(token string) error {
	if token == "" || !a.sessions.Del([]byte(token)) {
		return ErrSessionNotFound
	}
	a.logger.Infof(providers.TypeAdmin, "Owner signed out")
	return nil
}

func (a *AuthService) CurrentUser(token string) (*User, bool) {
	if token == "" {
		return nil, false
	}
	email, err := a.sessions.Get([]byte(token))
	if err != nil {
		return nil, false
	}
	return &User{Email: string(email)}, true
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
