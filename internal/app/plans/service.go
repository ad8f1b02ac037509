// Package plans orchestrates plan creation, updates, soft-cancellation and
// listing: rule validation first, then the active-title uniqueness guard,
// then the persistence mutation. Nothing is written until every check passed.
package plans

import (
	"time"

	"membership-app/internal/app/apperr"
	"membership-app/internal/app/guard"
	"membership-app/internal/domain/plans"
	"membership-app/internal/validation"

	"github.com/google/uuid"
)

// Repository is the persistence surface the service needs. FindByID returns
// (nil, nil) when the plan does not exist.
type Repository interface {
	ListActive(page int) ([]plans.Plan, error)
	FindByID(id uuid.UUID) (*plans.Plan, error)
	ActiveIDByTitle(title string) (uuid.UUID, bool, error)
	Create(p *plans.Plan) error
	Update(p *plans.Plan) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var createSchema = validation.NewSchema().
	Field("title",
		validation.Required("Title is required"),
		validation.String("Title must be a string")).
	Field("duration",
		validation.Required("Duration is required"),
		validation.Number("Duration must be a number"),
		validation.Positive("Duration must be positive"),
		validation.Integer("Duration must be an integer")).
	Field("price",
		validation.Required("Price is required"),
		validation.Number("Price must be a number"),
		validation.Positive("Price must be positive"))

var updateSchema = validation.NewSchema().
	Field("title",
		validation.String("Title must be a string")).
	Field("duration",
		validation.Number("Duration must be a number"),
		validation.Positive("Duration must be positive"),
		validation.Integer("Duration must be an integer")).
	Field("price",
		validation.Number("Price must be a number"),
		validation.Positive("Price must be positive"))

// View is the projection handed back to callers.
type View struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Duration int       `json:"duration"`
	Price    float64   `json:"price"`
}

// ListItem is the narrower listing projection: no id, matching the existing
// contract.
type ListItem struct {
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

func (s *Service) List(page int) ([]ListItem, error) {
	active, err := s.repo.ListActive(page)
	if err != nil {
		return nil, err
	}
	items := make([]ListItem, 0, len(active))
	for _, p := range active {
		items = append(items, ListItem{Title: p.Title, Duration: p.Duration, Price: p.Price})
	}
	return items, nil
}

func (s *Service) Create(in validation.Input) (*View, error) {
	if res := createSchema.Validate(in); !res.Valid() {
		return nil, apperr.NewValidation(res.First())
	}

	title, _ := in.String("title")
	conflict, err := guard.Conflicts(s.repo.ActiveIDByTitle, title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperr.NewConflict("Plan already exists")
	}

	duration, _ := in.Number("duration")
	price, _ := in.Number("price")
	p := plans.Plan{Title: title, Duration: int(duration), Price: price}
	if err := s.repo.Create(&p); err != nil {
		return nil, err
	}
	return view(&p), nil
}

func (s *Service) Update(id uuid.UUID, in validation.Input) (*View, error) {
	if res := updateSchema.Validate(in); !res.Valid() {
		return nil, apperr.NewValidation(res.First())
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NewNotFound("Plan does not exist")
	}

	// An unchanged title never hits the guard, so a plan can always be
	// re-saved under its own name.
	if title, ok := in.String("title"); ok && title != p.Title {
		conflict, err := guard.Conflicts(s.repo.ActiveIDByTitle, title, p.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, apperr.NewConflict("Plan's name already exists")
		}
		p.Title = title
	}
	if duration, ok := in.Number("duration"); ok {
		p.Duration = int(duration)
	}
	if price, ok := in.Number("price"); ok {
		p.Price = price
	}

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return view(p), nil
}

// Cancel soft-cancels the plan. Re-cancelling overwrites the earlier
// timestamp; callers relying on the first cancellation time must not re-cancel.
func (s *Service) Cancel(id uuid.UUID) (*plans.Plan, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NewNotFound("Plan does not exist")
	}

	now := time.Now()
	p.CanceledAt = &now
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func view(p *plans.Plan) *View {
	return &View{ID: p.ID, Title: p.Title, Duration: p.Duration, Price: p.Price}
}
