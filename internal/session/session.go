package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
	"github.com/sohaum/nepalibazar/internal/platform/logger"
)

// ActorKey is the store key the login collaborator writes the session
// token under. It is separate from the listings key and predates this
// module.
const ActorKey = "nb_user_v1"

var ErrEmptyUsername = errors.New("username is required")

// claims is what gets signed into the session token. Identity here is
// a self-declared display name, there is no credential check.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager resolves the current actor from the shared key-value store.
// Login and Logout exist for the login collaborator; everything else
// only reads.
type Manager struct {
	store  domain.KVStore
	secret []byte
	ttl    time.Duration
	logger *logger.Logger
}

// NewManager builds a session manager. A ttl of 0 issues tokens that
// never expire.
func NewManager(store domain.KVStore, secret string, ttl time.Duration, log *logger.Logger) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl, logger: log}
}

// Login signs the display name into a token and stores it.
func (m *Manager) Login(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	now := time.Now()
	c := claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl != 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	m.logger.Info("actor logged in", "username", username)
	return m.store.Set(ctx, ActorKey, []byte(signed))
}

// Logout drops the stored token.
func (m *Manager) Logout(ctx context.Context) error {
	m.logger.Info("actor logged out")
	return m.store.Delete(ctx, ActorKey)
}

// CurrentActor returns the logged-in display name. A missing,
// malformed, tampered or expired token means no actor.
func (m *Manager) CurrentActor(ctx context.Context) (string, bool) {
	raw, err := m.store.Get(ctx, ActorKey)
	if err != nil {
		m.logger.Warn("session read failed", "error", err.Error())
		return "", false
	}
	if raw == nil {
		return "", false
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(string(raw), c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		m.logger.Warn("session token rejected", "error", err.Error())
		return "", false
	}
	if !token.Valid || c.Username == "" {
		m.logger.Warn("session token invalid")
		return "", false
	}
	return c.Username, true
}
