package store

import (
	"errors"

	"membership-app/internal/domain/plans"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanStore struct {
	db *gorm.DB
}

func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{db: db}
}

func (s *PlanStore) ListActive(page int) ([]plans.Plan, error) {
	var out []plans.Plan
	err := s.db.Scopes(Active, Paginate(page)).Find(&out).Error
	return out, err
}

// FindByID returns (nil, nil) when no plan has the id.
func (s *PlanStore) FindByID(id uuid.UUID) (*plans.Plan, error) {
	var p plans.Plan
	err := s.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ActiveIDByTitle resolves which active plan, if any, holds the title.
func (s *PlanStore) ActiveIDByTitle(title string) (uuid.UUID, bool, error) {
	var p plans.Plan
	err := s.db.Scopes(Active).First(&p, "title = ?", title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return p.ID, true, nil
}

func (s *PlanStore) Create(p *plans.Plan) error {
	return s.db.Create(p).Error
}

func (s *PlanStore) Update(p *plans.Plan) error {
	return s.db.Save(p).Error
}
