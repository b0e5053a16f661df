package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/services"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

const testSecret = "test-session-secret-32-characters"

func setupGate(t *testing.T) *Gate {
	t.Helper()
	users := services.NewUserService(store.NewCollection[models.User](3), bcrypt.MinCost)
	require.NoError(t, users.CreateUser(models.User{ID: 1, Username: "alice", Role: models.RoleAdmin}, "pw"))
	require.NoError(t, users.CreateUser(models.User{ID: 2, Username: "chef", Role: models.RoleChef}, "pw"))
	require.NoError(t, users.CreateUser(models.User{ID: 3, Username: "bob", Role: models.RoleCustomer}, "pw"))
	return NewGate(users, testSecret, time.Hour)
}

func login(t *testing.T, g *Gate, username string) Session {
	t.Helper()
	s, err := g.Login(username, "pw")
	require.NoError(t, err)
	return s
}

func TestGate_Login(t *testing.T) {
	g := setupGate(t)

	s, err := g.Login("alice", "pw")
	require.NoError(t, err)
	assert.False(t, s.IsZero())
	assert.Equal(t, 1, s.UserID)
	assert.Equal(t, models.RoleAdmin, s.Role)
	assert.NotEmpty(t, s.ID)
	assert.Contains(t, s.Token, ".")

	role, ok := g.Role(s)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = g.Login("alice", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestGate_Authorize(t *testing.T) {
	g := setupGate(t)
	admin := login(t, g, "alice")
	chef := login(t, g, "chef")
	customer := login(t, g, "bob")

	testCases := []struct {
		name    string
		session Session
		op      Operation
		allowed bool
	}{
		{name: "no session on admin op", session: Session{}, op: OpAddUser, allowed: false},
		{name: "chef on admin op", session: chef, op: OpAddMaterial, allowed: false},
		{name: "admin on admin op", session: admin, op: OpAddMaterial, allowed: true},
		{name: "chef displays materials", session: chef, op: OpDisplayMaterial, allowed: true},
		{name: "customer displays materials", session: customer, op: OpDisplayMaterial, allowed: false},
		{name: "chef adds dish", session: chef, op: OpAddDish, allowed: true},
		{name: "no session displays dishes", session: Session{}, op: OpDisplayDish, allowed: true},
		{name: "no session registers", session: Session{}, op: OpRegister, allowed: true},
		{name: "customer adds order", session: customer, op: OpAddOrder, allowed: true},
		{name: "admin adds order", session: admin, op: OpAddOrder, allowed: false},
		{name: "customer checks out", session: customer, op: OpCheckout, allowed: true},
		{name: "admin checks out", session: admin, op: OpCheckout, allowed: false},
		{name: "customer modifies order", session: customer, op: OpModifyOrder, allowed: false},
		{name: "chef calculates finance", session: chef, op: OpCalculateFinance, allowed: false},
		{name: "admin calculates finance", session: admin, op: OpCalculateFinance, allowed: true},
		{name: "unknown operation", session: admin, op: Operation("kitchen.close"), allowed: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Authorize(tt.session, tt.op)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, models.ErrPermissionDenied)
				assert.EqualError(t, err, "Permission denied.")
			}
		})
	}
}

func TestGate_ForgedSessionIsRejected(t *testing.T) {
	g := setupGate(t)
	chef := login(t, g, "chef")

	forged := chef
	forged.Role = models.RoleAdmin
	assert.ErrorIs(t, g.Authorize(forged, OpAddUser), models.ErrPermissionDenied)

	handmade := Session{ID: "x", UserID: 1, Username: "alice", Role: models.RoleAdmin, Token: "not-a-jwt"}
	assert.ErrorIs(t, g.Authorize(handmade, OpAddUser), models.ErrPermissionDenied)

	other := NewGate(nil, "a-different-secret-of-enough-length", time.Hour)
	admin := login(t, g, "alice")
	assert.ErrorIs(t, other.Authorize(admin, OpAddUser), models.ErrPermissionDenied)
}

func TestGate_Logout(t *testing.T) {
	g := setupGate(t)
	admin := login(t, g, "alice")
	require.NoError(t, g.Authorize(admin, OpAddUser))

	g.Logout(admin)

	assert.ErrorIs(t, g.Authorize(admin, OpAddUser), models.ErrPermissionDenied)
	_, ok := g.Role(admin)
	assert.False(t, ok)

	// a fresh login is unaffected by the revoked one
	again := login(t, g, "alice")
	assert.NoError(t, g.Authorize(again, OpAddUser))

	g.Logout(Session{})
}

func TestGate_ExpiredSession(t *testing.T) {
	g := setupGate(t)
	admin := login(t, g, "alice")

	g.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.ErrorIs(t, g.Authorize(admin, OpAddUser), models.ErrPermissionDenied)
}

func TestAllowedRoles(t *testing.T) {
	roles, open := AllowedRoles(OpDisplayDish)
	assert.True(t, open)
	assert.Nil(t, roles)

	roles, open = AllowedRoles(OpDisplayMaterial)
	assert.False(t, open)
	assert.ElementsMatch(t, []models.Role{models.RoleAdmin, models.RoleChef}, roles)

	_, open = AllowedRoles(Operation("unknown"))
	assert.False(t, open)
	assert.False(t, Allows(Operation("unknown"), models.RoleAdmin))
}
