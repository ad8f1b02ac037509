package validation

import (
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Rule checks a single field of an input. Rules other than Required pass when
// the field was not sent, so a field with no Required rule is optional.
type Rule struct {
	apply func(in Input, name string) (msg string, failed bool)
}

// Required fails when the field is absent, null or an empty string.
func Required(msg string) Rule {
	return Rule{apply: func(in Input, name string) (string, bool) {
		if !in.Has(name) {
			return msg, true
		}
		return "", false
	}}
}

// check builds a Rule that only runs when the field is present.
func check(msg string, ok func(v any, in Input) bool) Rule {
	return Rule{apply: func(in Input, name string) (string, bool) {
		if !in.Has(name) {
			return "", false
		}
		if ok(in[name], in) {
			return "", false
		}
		return msg, true
	}}
}

// String fails when the value was not sent as a string.
func String(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		_, ok := v.(string)
		return ok
	})
}

// Number fails when the value was not sent as a JSON number.
func Number(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		_, ok := number(v)
		return ok
	})
}

// Positive fails when the value is not a number greater than zero.
func Positive(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		n, ok := number(v)
		return ok && n > 0
	})
}

// Integer fails when the value is a number with a fractional part.
func Integer(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		n, ok := number(v)
		return ok && n == math.Trunc(n)
	})
}

// MinLength fails when the value is not a string of at least n bytes.
func MinLength(n int, msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		s, ok := v.(string)
		return ok && len(s) >= n
	})
}

// Email fails when the value does not look like an email address.
func Email(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		s, ok := v.(string)
		return ok && emailPattern.MatchString(s)
	})
}

// UUID fails when the value is not a parseable UUID string.
func UUID(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// Date fails when the value is not a YYYY-MM-DD calendar date.
func Date(msg string) Rule {
	return check(msg, func(v any, _ Input) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
}

// OneOf fails when the value differs from the named sibling field's value.
// The rule is declared for strings only; any other type fails it, so bodies
// carrying arrays or objects in either field cannot panic the engine.
// An empty msg is allowed: the failure is still reported and the caller picks
// a fallback message.
func OneOf(other string, msg string) Rule {
	return check(msg, func(v any, in Input) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		o, ok := in[other].(string)
		return ok && s == o
	})
}

// truthy decides whether a dependency field activates a conditional rule.
// On top of plain presence, false and zero do not activate: a conditional on
// {"password": 0} stays dormant even though the field was sent.
func truthy(in Input, name string) bool {
	if !in.Has(name) {
		return false
	}
	switch v := in[name].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	return true
}

// When activates rules only while the named dependency field is truthy in
// the input. With the dependency absent or falsy the field falls back to
// whatever its unconditional rules say, so a lone When leaves it optional.
func When(dep string, rules ...Rule) Rule {
	return Rule{apply: func(in Input, name string) (string, bool) {
		if !truthy(in, dep) {
			return "", false
		}
		for _, r := range rules {
			if msg, failed := r.apply(in, name); failed {
				return msg, true
			}
		}
		return "", false
	}}
}
