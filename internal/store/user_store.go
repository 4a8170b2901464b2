package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"satellite-monitor-backend/internal/model"
)

// gormUserStore implements UserStore using GORM.
type gormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore creates a new GORM-backed user store.
func NewGormUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user %q: %w", u.Username, err)
	}
	return nil
}

func (s *gormUserStore) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *gormUserStore) Get(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	return u, notFound(err, "user %d", id)
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	return u, notFound(err, "user with email %q", email)
}

func (s *gormUserStore) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error
	return u, notFound(err, "user %q", username)
}

func (s *gormUserStore) Update(ctx context.Context, u *model.User) error {
	res := s.db.WithContext(ctx).Model(u).Select("*").Omit("created_at").Updates(u)
	if res.Error != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}

func (s *gormUserStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}
