// Package accounts orchestrates user account creation and updates. The update
// path carries the conditional password-change chain: sending oldPassword
// demands a new password, and sending a new password demands a matching
// confirmPassword. Sending none of the three means no password change.
package accounts

import (
	"membership-app/internal/app/apperr"
	"membership-app/internal/app/guard"
	"membership-app/internal/domain/users"
	"membership-app/internal/validation"

	"github.com/google/uuid"
)

// Repository is the persistence surface the service needs. Find methods
// return (nil, nil) when the user does not exist.
type Repository interface {
	FindByID(id uuid.UUID) (*users.User, error)
	FindByEmail(email string) (*users.User, error)
	IDByEmail(email string) (uuid.UUID, bool, error)
	Create(u *users.User) error
	Update(u *users.User) error
}

// Hasher is the opaque password-digest capability.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type Service struct {
	repo   Repository
	hasher Hasher
}

func NewService(repo Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

var createSchema = validation.NewSchema().
	Field("name",
		validation.Required("Name is required"),
		validation.String("Name must be a string")).
	Field("email",
		validation.Required("Email is required"),
		validation.Email("Email must be a valid email format")).
	Field("password",
		validation.Required("Password is required"),
		validation.MinLength(6, "Minimum value 6"))

// The oneOf rule deliberately carries no message; the fallback below covers it.
var updateSchema = validation.NewSchema().
	Field("name",
		validation.String("Name must be a string")).
	Field("email",
		validation.Email("Email must be a valid email format")).
	Field("oldPassword",
		validation.MinLength(6, "Minimum value 6")).
	Field("password",
		validation.MinLength(6, "Minimum value 6"),
		validation.When("oldPassword",
			validation.Required("Password is required"))).
	Field("confirmPassword",
		validation.When("password",
			validation.Required("Confirm password is required"),
			validation.OneOf("password", "")))

// View is the outward projection. The password digest never leaves the
// service.
type View struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (s *Service) Create(in validation.Input) (*View, error) {
	if res := createSchema.Validate(in); !res.Valid() {
		return nil, apperr.NewValidation(res.First())
	}

	email, _ := in.String("email")
	conflict, err := guard.Conflicts(s.repo.IDByEmail, email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperr.NewConflict("User already exists")
	}

	password, _ := in.String("password")
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	name, _ := in.String("name")
	u := users.User{Name: name, Email: email, PasswordHash: digest}
	if err := s.repo.Create(&u); err != nil {
		return nil, err
	}
	return view(&u), nil
}

func (s *Service) Update(id uuid.UUID, in validation.Input) (*View, error) {
	if res := updateSchema.Validate(in); !res.Valid() {
		msg := res.First()
		if msg == "" {
			msg = "Password not equal"
		}
		return nil, apperr.NewValidation(msg)
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewNotFound("User does not exist")
	}

	// The uniqueness lookup completes before any branching; an unchanged
	// email never reaches the guard.
	if email, ok := in.String("email"); ok && email != u.Email {
		conflict, err := guard.Conflicts(s.repo.IDByEmail, email, u.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, apperr.NewConflict("User already exists")
		}
		u.Email = email
	}

	if oldPassword, ok := in.String("oldPassword"); ok {
		if !s.hasher.Verify(oldPassword, u.PasswordHash) {
			return nil, apperr.NewAuth("Old password does not match")
		}
	}

	if name, ok := in.String("name"); ok {
		u.Name = name
	}
	if password, ok := in.String("password"); ok {
		digest, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = digest
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return view(u), nil
}

// Authenticate verifies email+password credentials and returns the matching
// user. Both unknown email and wrong password answer the same error.
func (s *Service) Authenticate(email, password string) (*users.User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.hasher.Verify(password, u.PasswordHash) {
		return nil, apperr.NewAuth("Invalid credentials")
	}
	return u, nil
}

func view(u *users.User) *View {
	return &View{ID: u.ID, Name: u.Name, Email: u.Email}
}
