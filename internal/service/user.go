package service

import (
	"context"
	"fmt"

	"github.com/msomdec/blogly/internal/domain"
)

// UserService handles user CRUD and validation.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create validates and stores a new user. An empty image URL is replaced
// with the default placeholder; this defaulting happens on create only.
func (s *UserService) Create(ctx context.Context, first, last, imageURL string) (*domain.User, error) {
	if err := validateName(first, last); err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}

	user := &domain.User{FirstName: first, LastName: last, ImageURL: imageURL}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns all users ordered by last name, then first name.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Update overwrites all three fields unconditionally. Unlike Create, an
// empty image URL is stored as empty.
func (s *UserService) Update(ctx context.Context, id int64, first, last, imageURL string) (*domain.User, error) {
	if err := validateName(first, last); err != nil {
		return nil, err
	}

	user := &domain.User{ID: id, FirstName: first, LastName: last, ImageURL: imageURL}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and, in the same transaction, every post they own.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func validateName(first, last string) error {
	if first == "" {
		return fmt.Errorf("%w: first name is required", domain.ErrInvalidInput)
	}
	if last == "" {
		return fmt.Errorf("%w: last name is required", domain.ErrInvalidInput)
	}
	return nil
}
