package accounts

import (
	"errors"
	"testing"

	"membership-app/internal/app/apperr"
	"membership-app/internal/domain/users"
	"membership-app/internal/validation"

	"github.com/google/uuid"
)

type fakeRepo struct {
	records []*users.User
}

func (f *fakeRepo) FindByID(id uuid.UUID) (*users.User, error) {
	for _, u := range f.records {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByEmail(email string) (*users.User, error) {
	for _, u := range f.records {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) IDByEmail(email string) (uuid.UUID, bool, error) {
	u, _ := f.FindByEmail(email)
	if u == nil {
		return uuid.Nil, false, nil
	}
	return u.ID, true, nil
}

func (f *fakeRepo) Create(u *users.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	clone := *u
	f.records = append(f.records, &clone)
	return nil
}

func (f *fakeRepo) Update(u *users.User) error {
	for i, existing := range f.records {
		if existing.ID == u.ID {
			clone := *u
			f.records[i] = &clone
			return nil
		}
	}
	return errors.New("user not persisted")
}

// fakeHasher keeps tests fast and digests inspectable.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "digest:" + plain, nil
}

func (fakeHasher) Verify(plain, digest string) bool {
	return digest == "digest:"+plain
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	return NewService(repo, fakeHasher{}), repo
}

func createUser(t *testing.T, svc *Service) *View {
	t.Helper()
	view, err := svc.Create(validation.Input{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "secret1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return view
}

func TestCreateProjectsWithoutDigest(t *testing.T) {
	svc, repo := newTestService()

	view := createUser(t, svc)
	if view.Name != "Ada Lovelace" || view.Email != "ada@example.com" {
		t.Errorf("projection = %+v", view)
	}

	stored, _ := repo.FindByID(view.ID)
	if stored.PasswordHash != "digest:secret1" {
		t.Errorf("stored digest = %q", stored.PasswordHash)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		in   validation.Input
		msg  string
	}{
		{"missing name", validation.Input{"email": "a@b.co", "password": "secret1"}, "Name is required"},
		{"missing email", validation.Input{"name": "Ada", "password": "secret1"}, "Email is required"},
		{"bad email", validation.Input{"name": "Ada", "email": "nope", "password": "secret1"}, "Email must be a valid email format"},
		{"missing password", validation.Input{"name": "Ada", "email": "a@b.co"}, "Password is required"},
		{"short password", validation.Input{"name": "Ada", "email": "a@b.co", "password": "abc"}, "Minimum value 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in)
			if err == nil || err.Error() != tt.msg {
				t.Fatalf("error = %v, want %q", err, tt.msg)
			}
		})
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	createUser(t, svc)

	_, err := svc.Create(validation.Input{
		"name":     "Imposter",
		"email":    "ada@example.com",
		"password": "secret2",
	})
	if err == nil || err.Error() != "User already exists" {
		t.Fatalf("error = %v, want conflict", err)
	}
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind != apperr.Conflict {
		t.Fatalf("kind = %v, want Conflict", err)
	}
}

func TestUpdateNameOnly(t *testing.T) {
	svc, repo := newTestService()
	view := createUser(t, svc)

	updated, err := svc.Update(view.ID, validation.Input{"name": "Ada King"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Ada King" {
		t.Errorf("name = %q", updated.Name)
	}

	stored, _ := repo.FindByID(view.ID)
	if stored.PasswordHash != "digest:secret1" {
		t.Error("password changed on a name-only update")
	}
}

func TestUpdatePasswordChainValidation(t *testing.T) {
	svc, _ := newTestService()
	view := createUser(t, svc)

	tests := []struct {
		name string
		in   validation.Input
		msg  string
	}{
		{
			"old password without new",
			validation.Input{"oldPassword": "secret1"},
			"Password is required",
		},
		{
			"new password without confirmation",
			validation.Input{"oldPassword": "secret1", "password": "secret2"},
			"Confirm password is required",
		},
		{
			"confirmation mismatch falls back to generic message",
			validation.Input{"oldPassword": "secret1", "password": "secret1x", "confirmPassword": "secret2x"},
			"Password not equal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(view.ID, tt.in)
			if err == nil || err.Error() != tt.msg {
				t.Fatalf("error = %v, want %q", err, tt.msg)
			}
		})
	}
}

func TestUpdateWrongOldPassword(t *testing.T) {
	svc, _ := newTestService()
	view := createUser(t, svc)

	_, err := svc.Update(view.ID, validation.Input{
		"oldPassword":     "wrong-pass",
		"password":        "secret2",
		"confirmPassword": "secret2",
	})
	if err == nil {
		t.Fatal("expected auth error")
	}
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind != apperr.Auth {
		t.Fatalf("kind = %v, want Auth", err)
	}
}

func TestUpdatePasswordChange(t *testing.T) {
	svc, repo := newTestService()
	view := createUser(t, svc)

	if _, err := svc.Update(view.ID, validation.Input{
		"oldPassword":     "secret1",
		"password":        "secret2",
		"confirmPassword": "secret2",
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := repo.FindByID(view.ID)
	hasher := fakeHasher{}
	if !hasher.Verify("secret2", stored.PasswordHash) {
		t.Error("new password does not verify")
	}
	if hasher.Verify("secret1", stored.PasswordHash) {
		t.Error("old password still verifies")
	}
}

func TestUpdateEmailUniqueness(t *testing.T) {
	svc, _ := newTestService()
	view := createUser(t, svc)

	if _, err := svc.Create(validation.Input{
		"name":     "Grace Hopper",
		"email":    "grace@example.com",
		"password": "secret1",
	}); err != nil {
		t.Fatal(err)
	}

	// Taken email conflicts before anything is written.
	_, err := svc.Update(view.ID, validation.Input{"email": "grace@example.com"})
	if err == nil || err.Error() != "User already exists" {
		t.Fatalf("error = %v, want conflict", err)
	}

	// The user's own email never conflicts.
	if _, err := svc.Update(view.ID, validation.Input{"email": "ada@example.com"}); err != nil {
		t.Fatalf("self-email update failed: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	view := createUser(t, svc)

	u, err := svc.Authenticate("ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if u.ID != view.ID {
		t.Errorf("authenticated wrong user: %v", u.ID)
	}

	if _, err := svc.Authenticate("ada@example.com", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Authenticate("nobody@example.com", "secret1"); err == nil {
		t.Error("unknown email accepted")
	}
}
