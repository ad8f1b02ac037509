package store

import (
	"errors"

	"membership-app/internal/domain/registrations"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

func (s *RegistrationStore) ListActive(page int) ([]registrations.Registration, error) {
	var out []registrations.Registration
	err := s.db.Scopes(Active, Paginate(page)).Find(&out).Error
	return out, err
}

// FindByID returns (nil, nil) when no registration has the id.
func (s *RegistrationStore) FindByID(id uuid.UUID) (*registrations.Registration, error) {
	var r registrations.Registration
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RegistrationStore) Create(r *registrations.Registration) error {
	return s.db.Create(r).Error
}

func (s *RegistrationStore) Update(r *registrations.Registration) error {
	return s.db.Save(r).Error
}
