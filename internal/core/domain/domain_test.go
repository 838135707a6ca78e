package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalOf(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		present bool
		want    string
	}{
		{"value", "coffee", true, "coffee"},
		{"trimmed", "  coffee  ", true, "coffee"},
		{"empty", "", false, ""},
		{"blank", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := OptionalOf(tt.in)
			assert.Equal(t, tt.present, o.Present())
			assert.Equal(t, tt.want, o.String())
		})
	}
}

func TestSome_BlankIsSetButNotPresent(t *testing.T) {
	o := Some("  ")

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "  ", v)
	assert.False(t, o.Present())
	assert.Equal(t, "", o.String())
}

func TestFromPtr(t *testing.T) {
	empty := ""
	note := "hi"

	_, ok := FromPtr(nil).Get()
	assert.False(t, ok)

	_, ok = FromPtr(&empty).Get()
	assert.True(t, ok, "an explicit empty value is still set")

	assert.Equal(t, "hi", FromPtr(&note).String())
}

func TestOptional_Or(t *testing.T) {
	fallback := Some("default")

	assert.Equal(t, "default", None().Or(fallback).String())
	assert.Equal(t, "mine", Some("mine").Or(fallback).String())

	_, ok := Some("").Or(fallback).Get()
	assert.True(t, ok)
	assert.Equal(t, "", Some("").Or(fallback).String())
}

func TestPaymentLink_HasFixedAmount(t *testing.T) {
	assert.True(t, (&PaymentLink{Amount: "50.00"}).HasFixedAmount())
	assert.False(t, (&PaymentLink{}).HasFixedAmount())
}
