package management

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

var errInvalidRole = models.NewError(models.CodeInvalidInput, "Invalid Role. Returning to main menu.")

// Register adds a user without requiring a session
func (f *Facade) Register(id int, username, password string, role models.Role) (string, error) {
	if !role.Valid() {
		return "", errInvalidRole
	}
	err := f.users.CreateUser(models.User{ID: id, Username: username, Role: role}, password)
	if errors.Is(err, models.ErrDuplicateKey) {
		return "", models.NewError(models.CodeDuplicateKey, "User ID already exists. Please try again.")
	}
	if err != nil {
		return "", err
	}
	f.logSuccess(auth.Session{}, auth.OpRegister, id)
	return "User registered successfully.", nil
}

func (f *Facade) AddUser(s auth.Session, id int, username, password string, role models.Role) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddUser); err != nil {
		return "", err
	}
	if !role.Valid() {
		return "", errInvalidRole
	}
	if err := f.users.CreateUser(models.User{ID: id, Username: username, Role: role}, password); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddUser, id)
	return "User added successfully.", nil
}

// ModifyUser replaces username, password and role of an existing user.
// Open sessions of that user keep the role they logged in with.
func (f *Facade) ModifyUser(s auth.Session, id int, username, password string, role models.Role) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyUser); err != nil {
		return "", err
	}
	if !role.Valid() {
		return "", errInvalidRole
	}
	if err := f.users.UpdateUser(models.User{ID: id, Username: username, Role: role}, password); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyUser, id)
	return "User modified successfully.", nil
}

func (f *Facade) DeleteUser(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteUser); err != nil {
		return "", err
	}
	if err := f.users.DeleteUser(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteUser, id)
	return "User deleted successfully.", nil
}

func (f *Facade) DisplayUsers(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayUser); err != nil {
		return "", err
	}
	return display(f.users.GetAllUsers(), "No users available."), nil
}
