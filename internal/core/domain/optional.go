package domain

import "strings"

// Optional is a string value that is either present or absent.
// The zero value is absent.
type Optional struct {
	value string
	valid bool
}

// Some returns a present value, even if s is blank.
func Some(s string) Optional {
	return Optional{value: s, valid: true}
}

// None returns an absent value.
func None() Optional {
	return Optional{}
}

// OptionalOf trims s and returns it as present unless it is blank.
func OptionalOf(s string) Optional {
	s = strings.TrimSpace(s)
	if s == "" {
		return None()
	}
	return Some(s)
}

// FromPtr maps a nil pointer to absent and anything else, blank included,
// to present. Request decoding uses it so that an explicitly cleared field
// is not replaced by a default.
func FromPtr(s *string) Optional {
	if s == nil {
		return None()
	}
	return Some(*s)
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.valid
}

// Present reports whether the value is present and non-blank after trimming.
func (o Optional) Present() bool {
	return o.valid && strings.TrimSpace(o.value) != ""
}

// String returns the trimmed value, or "" when absent.
func (o Optional) String() string {
	if !o.valid {
		return ""
	}
	return strings.TrimSpace(o.value)
}

// Or returns o when it is present, otherwise fallback.
func (o Optional) Or(fallback Optional) Optional {
	if o.valid {
		return o
	}
	return fallback
}
