package plans

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Plan struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string     `gorm:"not null;index:idx_plans_title" json:"title"`
	Duration   int        `gorm:"not null" json:"duration"` // months
	Price      float64    `gorm:"type:decimal(6,2);not null" json:"price"`
	CanceledAt *time.Time `gorm:"index" json:"canceled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (p *Plan) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Active reports whether the plan has not been soft-cancelled.
func (p *Plan) Active() bool {
	return p.CanceledAt == nil
}
