package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// UserService manages user accounts and their password hashes
type UserService interface {
	// CreateUser hashes password and adds the user, rejecting a duplicate ID
	CreateUser(user models.User, password string) error
	GetUserByID(id int) (models.User, error)
	// UpdateUser replaces username, role and password of an existing user
	UpdateUser(user models.User, password string) error
	DeleteUser(id int) error
	GetAllUsers() []models.User
	// GetUserByCredentials returns the first user, in insertion order, whose
	// username matches and whose password verifies
	GetUserByCredentials(username, password string) (models.User, error)
}

type userService struct {
	users        *store.Collection[models.User]
	passwordCost int
}

func NewUserService(users *store.Collection[models.User], passwordCost int) UserService {
	return &userService{users: users, passwordCost: passwordCost}
}

func (s *userService) CreateUser(user models.User, password string) error {
	if s.users.Contains(user.ID) {
		return storeError("User", store.ErrDuplicateKey)
	}
	if err := user.SetPassword(password, s.passwordCost); err != nil {
		return err
	}
	return storeError("User", s.users.Add(user.ID, user))
}

func (s *userService) GetUserByID(id int) (models.User, error) {
	user, err := s.users.Find(id)
	if err != nil {
		return models.User{}, storeError("User", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(user models.User, password string) error {
	if !s.users.Contains(user.ID) {
		return storeError("User", store.ErrNotFound)
	}
	if err := user.SetPassword(password, s.passwordCost); err != nil {
		return err
	}
	return storeError("User", s.users.Replace(user.ID, user))
}

func (s *userService) DeleteUser(id int) error {
	return storeError("User", s.users.Delete(id))
}

func (s *userService) GetAllUsers() []models.User {
	return s.users.List()
}

func (s *userService) GetUserByCredentials(username, password string) (models.User, error) {
	for _, user := range s.users.List() {
		if user.Username == username && user.CheckPassword(password) {
			return user, nil
		}
	}
	return models.User{}, models.ErrInvalidCredentials
}
