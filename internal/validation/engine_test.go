package validation

import "testing"

func planSchema() *Schema {
	return NewSchema().
		Field("title",
			Required("Title is required"),
			String("Title must be a string")).
		Field("duration",
			Required("Duration is required"),
			Number("Duration must be a number"),
			Positive("Duration must be positive"),
			Integer("Duration must be an integer")).
		Field("price",
			Required("Price is required"),
			Number("Price must be a number"),
			Positive("Price must be positive"))
}

func TestSchemaFieldRules(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		valid bool
		first string
	}{
		{
			name:  "all valid",
			in:    Input{"title": "Gold", "duration": float64(12), "price": 99.90},
			valid: true,
		},
		{
			name:  "missing title",
			in:    Input{"duration": float64(12), "price": 99.90},
			first: "Title is required",
		},
		{
			name:  "title wrong type",
			in:    Input{"title": float64(3), "duration": float64(12), "price": 99.90},
			first: "Title must be a string",
		},
		{
			name:  "duration not a number",
			in:    Input{"title": "Gold", "duration": "twelve", "price": 99.90},
			first: "Duration must be a number",
		},
		{
			name:  "duration negative",
			in:    Input{"title": "Gold", "duration": float64(-1), "price": 99.90},
			first: "Duration must be positive",
		},
		{
			name:  "duration fractional",
			in:    Input{"title": "Gold", "duration": 1.5, "price": 99.90},
			first: "Duration must be an integer",
		},
		{
			name:  "price missing",
			in:    Input{"title": "Gold", "duration": float64(12)},
			first: "Price is required",
		},
		{
			name:  "price zero is not positive",
			in:    Input{"title": "Gold", "duration": float64(12), "price": float64(0)},
			first: "Price must be positive",
		},
		{
			name:  "empty string counts as missing",
			in:    Input{"title": "", "duration": float64(12), "price": 99.90},
			first: "Title is required",
		},
	}

	schema := planSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := schema.Validate(tt.in)
			if res.Valid() != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid(), tt.valid, res.Errors)
			}
			if res.First() != tt.first {
				t.Fatalf("first error = %q, want %q", res.First(), tt.first)
			}
		})
	}
}

func TestValidateCollectsAcrossFields(t *testing.T) {
	res := planSchema().Validate(Input{"price": "free"})

	if res.Valid() {
		t.Fatal("expected invalid result")
	}
	// One error per failing field, in declaration order, no short-circuit.
	want := []string{"Title is required", "Duration is required", "Price must be a number"}
	if len(res.Errors) != len(want) {
		t.Fatalf("collected %d errors, want %d: %v", len(res.Errors), len(want), res.Errors)
	}
	for i, msg := range want {
		if res.Errors[i] != msg {
			t.Errorf("errors[%d] = %q, want %q", i, res.Errors[i], msg)
		}
	}
}

func passwordChangeSchema() *Schema {
	return NewSchema().
		Field("oldPassword", MinLength(6, "Minimum value 6")).
		Field("password",
			MinLength(6, "Minimum value 6"),
			When("oldPassword", Required("Password is required"))).
		Field("confirmPassword",
			When("password",
				Required("Confirm password is required"),
				OneOf("password", "")))
}

func TestConditionalPasswordChain(t *testing.T) {
	schema := passwordChangeSchema()

	tests := []struct {
		name  string
		in    Input
		valid bool
		first string
	}{
		{
			name:  "no password fields at all",
			in:    Input{},
			valid: true,
		},
		{
			name:  "old password alone activates required",
			in:    Input{"oldPassword": "hunter2x"},
			first: "Password is required",
		},
		{
			name:  "password without confirmation",
			in:    Input{"oldPassword": "hunter2x", "password": "secret1"},
			first: "Confirm password is required",
		},
		{
			name: "confirmation mismatch fails with empty message",
			in:   Input{"oldPassword": "hunter2x", "password": "secret1", "confirmPassword": "secret2"},
		},
		{
			name:  "full matching chain",
			in:    Input{"oldPassword": "hunter2x", "password": "secret1", "confirmPassword": "secret1"},
			valid: true,
		},
		{
			name:  "password without old password is still checked",
			in:    Input{"password": "secret1", "confirmPassword": "secret1"},
			valid: true,
		},
		{
			name:  "short new password",
			in:    Input{"oldPassword": "hunter2x", "password": "abc", "confirmPassword": "abc"},
			first: "Minimum value 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := schema.Validate(tt.in)
			if res.Valid() != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid(), tt.valid, res.Errors)
			}
			if res.First() != tt.first {
				t.Fatalf("first error = %q, want %q", res.First(), tt.first)
			}
		})
	}
}

func TestOneOfRejectsNonStringsWithoutPanic(t *testing.T) {
	schema := passwordChangeSchema()

	// Arrays in both fields must fail validation, not crash the engine.
	tests := []struct {
		name string
		in   Input
	}{
		{
			name: "identical arrays in both fields",
			in:   Input{"password": []any{1.0}, "confirmPassword": []any{1.0}},
		},
		{
			name: "objects in both fields",
			in:   Input{"password": map[string]any{"a": "b"}, "confirmPassword": map[string]any{"a": "b"}},
		},
		{
			name: "array confirmation for a string password",
			in:   Input{"password": "secret1", "confirmPassword": []any{"secret1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := schema.Validate(tt.in); res.Valid() {
				t.Fatal("non-string equality accepted")
			}
		})
	}
}

func TestConditionalIgnoresFalsyDependency(t *testing.T) {
	schema := NewSchema().Field("b", When("a", Required("B is required")))

	for _, in := range []Input{
		{"a": false},
		{"a": float64(0)},
		{"a": ""},
		{},
	} {
		if res := schema.Validate(in); !res.Valid() {
			t.Errorf("falsy dependency %v activated the conditional: %v", in["a"], res.Errors)
		}
	}

	for _, in := range []Input{
		{"a": true},
		{"a": float64(1)},
		{"a": "set"},
	} {
		res := schema.Validate(in)
		if res.Valid() || res.First() != "B is required" {
			t.Errorf("truthy dependency %v did not activate: %v", in["a"], res.Errors)
		}
	}
}

func TestEmailRule(t *testing.T) {
	schema := NewSchema().Field("email",
		Required("Email is required"),
		Email("Email must be a valid email format"))

	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, email := range valid {
		if res := schema.Validate(Input{"email": email}); !res.Valid() {
			t.Errorf("%q rejected: %v", email, res.Errors)
		}
	}

	invalid := []string{"plainaddress", "user@", "@example.com", "user@host"}
	for _, email := range invalid {
		res := schema.Validate(Input{"email": email})
		if res.Valid() {
			t.Errorf("%q accepted", email)
		} else if res.First() != "Email must be a valid email format" {
			t.Errorf("%q: first error = %q", email, res.First())
		}
	}
}

func TestUUIDAndDateRules(t *testing.T) {
	schema := NewSchema().
		Field("plan_id", UUID("Plan must be a valid id")).
		Field("start_date", Date("Start date must be a valid date"))

	if res := schema.Validate(Input{
		"plan_id":    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"start_date": "2026-09-01",
	}); !res.Valid() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	if res := schema.Validate(Input{"plan_id": "not-a-uuid"}); res.First() != "Plan must be a valid id" {
		t.Fatalf("first error = %q", res.First())
	}
	if res := schema.Validate(Input{"start_date": "01/09/2026"}); res.First() != "Start date must be a valid date" {
		t.Fatalf("first error = %q", res.First())
	}
}

func TestInputAccessors(t *testing.T) {
	in := Input{"name": "Ada", "age": float64(36), "empty": "", "null": nil}

	if s, ok := in.String("name"); !ok || s != "Ada" {
		t.Errorf("String(name) = %q, %v", s, ok)
	}
	if _, ok := in.String("empty"); ok {
		t.Error("empty string reported as present")
	}
	if n, ok := in.Number("age"); !ok || n != 36 {
		t.Errorf("Number(age) = %v, %v", n, ok)
	}
	if in.Has("null") {
		t.Error("null value reported as present")
	}
	if in.Has("absent") {
		t.Error("absent key reported as present")
	}
}
