// Package auth binds actors to sessions and checks them against the fixed
// role permission table.
package auth

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/services"
)

var (
	errNoSession = errors.New("no session bound")
	errRevoked   = errors.New("session revoked")
)

// Gate authenticates users and authorizes sessions. It keeps the set of
// revoked session IDs; everything else travels in the Session value.
type Gate struct {
	users   services.UserService
	key     []byte
	ttl     time.Duration
	revoked map[string]struct{}
	now     func() time.Time
}

// NewGate creates a gate signing sessions with secret, valid for ttl
func NewGate(users services.UserService, secret string, ttl time.Duration) *Gate {
	return &Gate{
		users:   users,
		key:     []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]struct{}),
		now:     time.Now,
	}
}

// Login binds a session to the first user whose username and password match.
// The role is captured at login time.
func (g *Gate) Login(username, password string) (Session, error) {
	user, err := g.users.GetUserByCredentials(username, password)
	if err != nil {
		log.WithField("username", username).Warn("Login failed")
		return Session{}, err
	}

	session, err := issueSession(user, g.key, g.now(), g.ttl)
	if err != nil {
		return Session{}, err
	}

	log.WithFields(log.Fields{
		"session_id": session.ID,
		"user_id":    user.ID,
		"role":       user.Role,
	}).Info("User logged in")
	return session, nil
}

// Logout revokes the session. Logging out a zero session is a no-op.
func (g *Gate) Logout(s Session) {
	if s.IsZero() {
		return
	}
	g.revoked[s.ID] = struct{}{}
	log.WithFields(log.Fields{
		"session_id": s.ID,
		"user_id":    s.UserID,
	}).Info("User logged out")
}

// Role returns the role bound to a valid session
func (g *Gate) Role(s Session) (models.Role, bool) {
	if err := g.validate(s); err != nil {
		return "", false
	}
	return s.Role, true
}

// Authorize checks that s may run op. Open operations need no session.
func (g *Gate) Authorize(s Session, op Operation) error {
	if _, open := AllowedRoles(op); open {
		return nil
	}

	fields := log.Fields{"operation": op, "session_id": s.ID, "user_id": s.UserID}
	if err := g.validate(s); err != nil {
		log.WithFields(fields).WithError(err).Warn("Permission denied: no valid session")
		return models.ErrPermissionDenied
	}
	if !Allows(op, s.Role) {
		fields["role"] = s.Role
		log.WithFields(fields).Warn("Permission denied: role not allowed")
		return models.ErrPermissionDenied
	}
	return nil
}

func (g *Gate) validate(s Session) error {
	if s.IsZero() {
		return errNoSession
	}
	if _, revoked := g.revoked[s.ID]; revoked {
		return errRevoked
	}
	return verifySession(s, g.key, g.now)
}
