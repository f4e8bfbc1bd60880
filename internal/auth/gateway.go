package auth

import (
	"errors"
	"sync"

	"github.com/petsphere/petsphere-api/internal/models"
	"github.com/petsphere/petsphere-api/internal/store"
)

// ErrInvalidCredentials is the single failure every unsuccessful login
// produces. Unknown usernames and wrong passwords are deliberately
// indistinguishable so the login endpoint cannot be used to enumerate
// accounts.
var ErrInvalidCredentials = errors.New("auth: invalid username or password")

// decoyHash is verified against when the username is unknown, so that both
// failure paths pay the same scrypt cost.
var (
	decoyOnce sync.Once
	decoyHash string
)

func getDecoyHash() string {
	decoyOnce.Do(func() {
		decoyHash, _ = HashPassword("petsphere-decoy-credential")
	})
	return decoyHash
}

// Gateway authenticates credentials against the store and maintains
// identity across requests through the session manager.
type Gateway struct {
	Store    *store.Store
	Sessions *SessionManager
}

// Authenticate checks a username/password pair. On success it returns the
// user; on any failure it returns ErrInvalidCredentials.
func (g *Gateway) Authenticate(username, password string) (*models.User, error) {
	user := g.Store.GetUserByUsername(username)
	if user == nil {
		// Burn the same key derivation as the known-user path.
		_, _ = VerifyPassword(password, getDecoyHash())
		return nil, ErrInvalidCredentials
	}

	ok, err := VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueSession serializes the user's identity into a cookie token backed by
// a server-side session record.
func (g *Gateway) IssueSession(user *models.User) (string, error) {
	return g.Sessions.Issue(user.ID)
}

// ResolveSession deserializes a cookie token back into a full user record
// via a live store lookup. A session whose user no longer exists is revoked
// and treated as invalid; every failure path returns nil with no
// distinguishing detail.
func (g *Gateway) ResolveSession(token string) *models.User {
	userID, ok := g.Sessions.Resolve(token)
	if !ok {
		return nil
	}

	user := g.Store.GetUser(userID)
	if user == nil {
		g.Sessions.Revoke(token)
		return nil
	}
	return user
}

// RevokeSession ends the session a token refers to.
func (g *Gateway) RevokeSession(token string) {
	g.Sessions.Revoke(token)
}
