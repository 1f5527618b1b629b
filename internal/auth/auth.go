package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

// CookieName is the session cookie issued at login.
const CookieName = "auth_session"

const sessionTTL = 7 * 24 * time.Hour

var (
	ErrNoUsers            = errors.New("no users configured")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Credential is one allowed username/password pair. Held in memory only.
type Credential struct {
	Username string
	Password string
}

// Service validates credentials and mints/verifies the stateless session
// token. The token is a keyed hash of the credential pair, so a session is
// fully re-derivable from configuration and there is no session store.
type Service struct {
	users  []Credential
	secret string
	secure bool
}

// NewService builds the auth service. secure marks issued cookies Secure
// (set in production).
func NewService(users []Credential, secret string, secure bool) *Service {
	return &Service{users: users, secret: secret, secure: secure}
}

// ParseAllowedUsers parses the "user1:pass1,user2:pass2" allow-list and
// appends the legacy single pair when both parts are set. Malformed or
// incomplete entries are skipped.
func ParseAllowedUsers(raw, legacyUser, legacyPass string) []Credential {
	var out []Credential
	for _, pair := range strings.Split(raw, ",") {
		u, p, _ := strings.Cut(pair, ":")
		u = strings.TrimSpace(u)
		p = strings.TrimSpace(p)
		if u == "" || p == "" {
			continue
		}
		out = append(out, Credential{Username: u, Password: p})
	}
	if legacyUser != "" && legacyPass != "" {
		out = append(out, Credential{Username: legacyUser, Password: legacyPass})
	}
	return out
}

func (s *Service) hash(c Credential) string {
	sum := sha256.Sum256([]byte(c.Username + ":" + c.Password + s.secret))
	return hex.EncodeToString(sum[:])
}

// Login matches the pair against the allow-list (exact, case-sensitive) and
// returns the session cookie value "username|hashHex" on success.
func (s *Service) Login(username, password string) (string, error) {
	if len(s.users) == 0 {
		return "", ErrNoUsers
	}
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u.Username + "|" + s.hash(u), nil
		}
	}
	return "", ErrInvalidCredentials
}

// Verify checks a session cookie value. The expected hash is recomputed from
// the claimed user's configured password, so rotating a password invalidates
// the session. Malformed input verifies false, never panics.
func (s *Service) Verify(cookieValue string) (string, bool) {
	username, hash, ok := strings.Cut(cookieValue, "|")
	if !ok || username == "" || hash == "" {
		return "", false
	}
	for _, u := range s.users {
		if u.Username != username {
			continue
		}
		expected := s.hash(u)
		if subtle.ConstantTimeCompare([]byte(hash), []byte(expected)) == 1 {
			return username, true
		}
		return "", false
	}
	return "", false
}

// SessionCookie wraps a login token in the 7-day session cookie.
func (s *Service) SessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	}
}

// ClearedCookie returns the cookie that deletes the session. Logout needs
// nothing more since there is no server-side session state.
func (s *Service) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
