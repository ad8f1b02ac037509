package store

import (
	"membership-app/internal/domain/students"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStore struct {
	db *gorm.DB
}

func NewStudentStore(db *gorm.DB) *StudentStore {
	return &StudentStore{db: db}
}

func (s *StudentStore) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&students.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
