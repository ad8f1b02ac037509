// Package registrations orchestrates student enrollments into plans. End date
// and price are derived from the referenced plan at write time: the price is a
// snapshot, so later plan changes never touch existing registrations.
package registrations

import (
	"math"
	"time"

	"membership-app/internal/app/apperr"
	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/registrations"
	"membership-app/internal/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// Repository is the persistence surface the service needs. FindByID returns
// (nil, nil) when the registration does not exist.
type Repository interface {
	ListActive(page int) ([]registrations.Registration, error)
	FindByID(id uuid.UUID) (*registrations.Registration, error)
	Create(r *registrations.Registration) error
	Update(r *registrations.Registration) error
}

// PlanSource resolves referenced plans; (nil, nil) when absent.
type PlanSource interface {
	FindByID(id uuid.UUID) (*plans.Plan, error)
}

// StudentSource checks referenced students, which are owned elsewhere.
type StudentSource interface {
	Exists(id uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	plans    PlanSource
	students StudentSource
}

func NewService(repo Repository, plans PlanSource, students StudentSource) *Service {
	return &Service{repo: repo, plans: plans, students: students}
}

var createSchema = validation.NewSchema().
	Field("student_id",
		validation.Required("Student is required"),
		validation.UUID("Student must be a valid id")).
	Field("plan_id",
		validation.Required("Plan is required"),
		validation.UUID("Plan must be a valid id")).
	Field("start_date",
		validation.Required("Start date is required"),
		validation.Date("Start date must be a valid date"))

var updateSchema = validation.NewSchema().
	Field("student_id",
		validation.UUID("Student must be a valid id")).
	Field("plan_id",
		validation.UUID("Plan must be a valid id")).
	Field("start_date",
		validation.Date("Start date must be a valid date"))

// View is the outward projection; dates render as plain calendar days.
type View struct {
	ID         uuid.UUID  `json:"id"`
	StudentID  uuid.UUID  `json:"student_id"`
	PlanID     uuid.UUID  `json:"plan_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Price      float64    `json:"price"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

func (s *Service) List(page int) ([]View, error) {
	active, err := s.repo.ListActive(page)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(active))
	for i := range active {
		views = append(views, *view(&active[i]))
	}
	return views, nil
}

func (s *Service) Create(in validation.Input) (*View, error) {
	if res := createSchema.Validate(in); !res.Valid() {
		return nil, apperr.NewValidation(res.First())
	}

	rawStudent, _ := in.String("student_id")
	studentID, _ := uuid.Parse(rawStudent)
	exists, err := s.students.Exists(studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NewNotFound("Student does not exist")
	}

	rawPlan, _ := in.String("plan_id")
	planID, _ := uuid.Parse(rawPlan)
	p, err := s.activePlan(planID)
	if err != nil {
		return nil, err
	}

	rawStart, _ := in.String("start_date")
	start, _ := time.Parse(dateLayout, rawStart)

	r := registrations.Registration{
		StudentID: studentID,
		PlanID:    planID,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(start.AddDate(0, p.Duration, 0)),
		Price:     totalPrice(p),
	}
	if err := s.repo.Create(&r); err != nil {
		return nil, err
	}
	return view(&r), nil
}

func (s *Service) Update(id uuid.UUID, in validation.Input) (*View, error) {
	if res := updateSchema.Validate(in); !res.Valid() {
		return nil, apperr.NewValidation(res.First())
	}

	r, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NewNotFound("Registration does not exist")
	}

	if rawStudent, ok := in.String("student_id"); ok {
		studentID, _ := uuid.Parse(rawStudent)
		if studentID != r.StudentID {
			exists, err := s.students.Exists(studentID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, apperr.NewNotFound("Student does not exist")
			}
			r.StudentID = studentID
		}
	}

	planID := r.PlanID
	start := time.Time(r.StartDate)
	rederive := false
	if rawPlan, ok := in.String("plan_id"); ok {
		if pid, _ := uuid.Parse(rawPlan); pid != r.PlanID {
			planID = pid
			rederive = true
		}
	}
	if rawStart, ok := in.String("start_date"); ok {
		start, _ = time.Parse(dateLayout, rawStart)
		rederive = true
	}

	if rederive {
		p, err := s.activePlan(planID)
		if err != nil {
			return nil, err
		}
		r.PlanID = planID
		r.StartDate = datatypes.Date(start)
		r.EndDate = datatypes.Date(start.AddDate(0, p.Duration, 0))
		r.Price = totalPrice(p)
	}

	if err := s.repo.Update(r); err != nil {
		return nil, err
	}
	return view(r), nil
}

// Cancel soft-cancels the registration, overwriting any earlier timestamp.
func (s *Service) Cancel(id uuid.UUID) (*View, error) {
	r, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NewNotFound("Registration does not exist")
	}

	now := time.Now()
	r.CanceledAt = &now
	if err := s.repo.Update(r); err != nil {
		return nil, err
	}
	return view(r), nil
}

func (s *Service) activePlan(id uuid.UUID) (*plans.Plan, error) {
	p, err := s.plans.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active() {
		return nil, apperr.NewNotFound("Plan does not exist")
	}
	return p, nil
}

// totalPrice is the full cost of the plan's duration, kept to two decimals.
func totalPrice(p *plans.Plan) float64 {
	return math.Round(p.Price*float64(p.Duration)*100) / 100
}

func view(r *registrations.Registration) *View {
	return &View{
		ID:         r.ID,
		StudentID:  r.StudentID,
		PlanID:     r.PlanID,
		StartDate:  time.Time(r.StartDate).Format(dateLayout),
		EndDate:    time.Time(r.EndDate).Format(dateLayout),
		Price:      r.Price,
		CanceledAt: r.CanceledAt,
	}
}
