// Package users implements account management on top of store.UserStore.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"satellite-monitor-backend/internal/model"
	"satellite-monitor-backend/internal/store"
)

var (
	// ErrEmailTaken is returned when another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned when another account already uses the username.
	ErrUsernameTaken = errors.New("username already exists")
)

// CreateInput holds the fields of a new account.
type CreateInput struct {
	Username string
	Email    string
	FullName string
	Password string
	IsActive *bool
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Username *string
	Email    *string
	FullName *string
	Password *string
	IsActive *bool
}

// Service validates and persists user accounts.
type Service struct {
	store store.UserStore
	cost  int
	now   func() time.Time
}

// NewService creates a user service backed by s.
func NewService(s store.UserStore) *Service {
	return &Service{
		store: s,
		cost:  bcrypt.DefaultCost,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a new account. Email is checked before username.
func (s *Service) Create(ctx context.Context, in CreateInput) (model.User, error) {
	if err := s.checkEmail(ctx, in.Email, 0); err != nil {
		return model.User{}, err
	}
	if err := s.checkUsername(ctx, in.Username, 0); err != nil {
		return model.User{}, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	now := s.now()
	u := model.User{
		Username:       in.Username,
		Email:          in.Email,
		FullName:       in.FullName,
		HashedPassword: hash,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.store.Create(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// List pages through accounts ordered by id.
func (s *Service) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.store.List(ctx, skip, limit)
}

// Get returns one account or an error wrapping store.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (model.User, error) {
	return s.store.Get(ctx, id)
}

// Update applies the non-nil fields of in to account id.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (model.User, error) {
	u, err := s.store.Get(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if in.Email != nil && *in.Email != u.Email {
		if err := s.checkEmail(ctx, *in.Email, id); err != nil {
			return model.User{}, err
		}
		u.Email = *in.Email
	}
	if in.Username != nil && *in.Username != u.Username {
		if err := s.checkUsername(ctx, *in.Username, id); err != nil {
			return model.User{}, err
		}
		u.Username = *in.Username
	}
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return model.User{}, err
		}
		u.HashedPassword = hash
	}

	u.UpdatedAt = s.now()
	if err := s.store.Update(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Delete removes account id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// CheckPassword reports whether password matches the stored hash of u.
func CheckPassword(u model.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) == nil
}

func (s *Service) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (s *Service) checkEmail(ctx context.Context, email string, self int64) error {
	existing, err := s.store.FindByEmail(ctx, email)
	return taken(existing.ID, self, err, ErrEmailTaken)
}

func (s *Service) checkUsername(ctx context.Context, username string, self int64) error {
	existing, err := s.store.FindByUsername(ctx, username)
	return taken(existing.ID, self, err, ErrUsernameTaken)
}

// taken maps a lookup result to errTaken when it found an account other than self.
func taken(foundID, self int64, err, errTaken error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case foundID == self:
		return nil
	default:
		return errTaken
	}
}
