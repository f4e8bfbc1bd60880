package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie that carries the session token.
const SessionCookie = "petsphere_session"

// DefaultSessionTTL is the expiry window measured from the last renewal.
const DefaultSessionTTL = 7 * 24 * time.Hour

// session is a server-side record mapping a session id to the user it
// authenticates. The record, not the cookie, is authoritative: deleting it
// revokes the session no matter what the client still holds.
type session struct {
	userID    int64
	expiresAt time.Time
}

// SessionManager owns the in-memory session backing store and the signed
// cookie tokens that reference it. Sessions do not survive a restart.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	secret   []byte
	ttl      time.Duration

	now func() time.Time
}

// NewSessionManager returns a manager signing tokens with the given secret.
// A ttl of zero falls back to DefaultSessionTTL.
func NewSessionManager(secret []byte, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		sessions: make(map[string]*session),
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

// TTL returns the session expiry window.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue creates a session for the user and returns the signed cookie token.
// The token carries only the session id; the identity stays server-side.
func (m *SessionManager) Issue(userID int64) (string, error) {
	sid := uuid.NewString()

	m.mu.Lock()
	m.sessions[sid] = &session{
		userID:    userID,
		expiresAt: m.now().Add(m.ttl),
	}
	m.mu.Unlock()

	claims := jwt.MapClaims{
		"sid": sid,
		"iat": m.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Resolve maps a cookie token back to the user id it authenticates. A
// successful resolve renews the session, restarting the expiry window.
// Tampered tokens, unknown sessions and expired sessions all resolve to
// (0, false) with no distinguishing detail.
func (m *SessionManager) Resolve(token string) (int64, bool) {
	sid, err := m.parseSID(token)
	if err != nil {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sid]
	if !ok {
		return 0, false
	}
	if m.now().After(sess.expiresAt) {
		delete(m.sessions, sid)
		return 0, false
	}
	sess.expiresAt = m.now().Add(m.ttl)
	return sess.userID, true
}

// Revoke deletes the session a token refers to. Revoking an invalid or
// already-revoked token is a no-op.
func (m *SessionManager) Revoke(token string) {
	sid, err := m.parseSID(token)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}

// PruneExpired drops every expired session record and returns how many
// were removed. Expired records are unreferenced by definition, so this
// only reclaims memory; it runs on a timer, not on the request path.
func (m *SessionManager) PruneExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	pruned := 0
	for sid, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, sid)
			pruned++
		}
	}
	return pruned
}

// parseSID verifies the token signature and extracts the session id.
func (m *SessionManager) parseSID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid session claim")
	}
	return sid, nil
}
