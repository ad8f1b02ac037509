// Package validation evaluates declarative per-field rule sets over raw
// request bodies. Fields are checked in declaration order and evaluation never
// aborts early across fields: each failing field contributes one message and
// the next field is still visited. Callers surface only the first message.
package validation

// Input is a decoded JSON body. Values keep the types encoding/json produces
// (string, float64, bool, nil); a missing key means the field was not sent.
type Input map[string]any

// String returns the named field when it was sent as a non-empty string.
func (in Input) String(name string) (string, bool) {
	s, ok := in[name].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Number returns the named field when it was sent as a JSON number.
func (in Input) Number(name string) (float64, bool) {
	return number(in[name])
}

// Has reports whether the named field was sent with a value. Absent keys,
// nulls and empty strings all count as not present. Note this is plain
// presence: conditional rules activate on the stricter truthy notion, which
// additionally excludes false and zero.
func (in Input) Has(name string) bool {
	v, ok := in[name]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

type field struct {
	name  string
	rules []Rule
}

// Schema is an ordered field-name -> rule-set mapping.
type Schema struct {
	fields []field
}

func NewSchema() *Schema {
	return &Schema{}
}

// Field appends a field and its rules. Declaration order is evaluation order.
func (s *Schema) Field(name string, rules ...Rule) *Schema {
	s.fields = append(s.fields, field{name: name, rules: rules})
	return s
}

// Result carries the collected error messages, one per failed field, in field
// declaration order. A message may be empty when the failing rule carried
// none; the failure still counts.
type Result struct {
	Errors []string
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// First returns the first collected message, or "" when the input was valid
// or the failing rule had no message.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate runs every field's rules against in. Within a field the first
// failing rule wins; across fields evaluation continues regardless.
func (s *Schema) Validate(in Input) Result {
	var res Result
	for _, f := range s.fields {
		for _, r := range f.rules {
			if msg, failed := r.apply(in, f.name); failed {
				res.Errors = append(res.Errors, msg)
				break
			}
		}
	}
	return res
}
