package registrations

import (
	"time"

	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/students"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration ties a student to a plan for a date window. Price is a snapshot
// taken when the registration is created: later plan price changes must not
// alter it.
type Registration struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_registrations_student_id" json:"student_id"`
	Student    *students.Student `gorm:"foreignKey:StudentID" json:"-"`
	PlanID     uuid.UUID         `gorm:"type:uuid;not null;index:idx_registrations_plan_id" json:"plan_id"`
	Plan       *plans.Plan       `gorm:"foreignKey:PlanID" json:"-"`
	StartDate  datatypes.Date    `gorm:"not null" json:"-"`
	EndDate    datatypes.Date    `gorm:"not null" json:"-"`
	Price      float64           `gorm:"type:decimal(6,2);not null" json:"price"`
	CanceledAt *time.Time        `gorm:"index" json:"canceled_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (r *Registration) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Active reports whether the registration has not been soft-cancelled.
func (r *Registration) Active() bool {
	return r.CanceledAt == nil
}
