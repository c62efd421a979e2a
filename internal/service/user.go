package service

import (
	"engbot/internal/domain"
	"engbot/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates the user record on first contact; repeats are no-ops
func (s *UserService) Register(user domain.User) error {
	return s.userRepo.EnsureUser(user)
}
