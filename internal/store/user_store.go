package store

import (
	"errors"

	"membership-app/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByID returns (nil, nil) when no user has the id.
func (s *UserStore) FindByID(id uuid.UUID) (*users.User, error) {
	var u users.User
	err := s.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns (nil, nil) when no user has the email. Email uniqueness
// is global, so no active-scope here.
func (s *UserStore) FindByEmail(email string) (*users.User, error) {
	var u users.User
	err := s.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IDByEmail resolves which user, if any, holds the email.
func (s *UserStore) IDByEmail(email string) (uuid.UUID, bool, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return uuid.Nil, false, err
	}
	if u == nil {
		return uuid.Nil, false, nil
	}
	return u.ID, true, nil
}

func (s *UserStore) Create(u *users.User) error {
	return s.db.Create(u).Error
}

func (s *UserStore) Update(u *users.User) error {
	return s.db.Save(u).Error
}
