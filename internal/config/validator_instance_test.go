package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator(), "validator is shared")
}

func TestVariantValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"ripple", "ripple", true},
		{"hearts", "hearts", true},
		{"journey", "journey", true},
		{"welcome", "welcome", true},
		{"empty", "", false},
		{"unknown", "carousel", false},
		{"case sensitive", "Ripple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "variant")
			assert.Equal(t, tt.expected, err == nil, "variant validation for %q (error: %v)", tt.value, err)
		})
	}
}

func TestGateValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"pointer", "pointer", true},
		{"viewport", "viewport", true},
		{"hover", "hover", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "gate")
			assert.Equal(t, tt.expected, err == nil, "gate validation for %q (error: %v)", tt.value, err)
		})
	}
}

func TestSeenKeyValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"default", DefaultSeenKey, true},
		{"dotted", "hotel.welcome-v2", true},
		{"spaces", "welcome seen", false},
		{"slash", "../seen", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "seen_key")
			assert.Equal(t, tt.expected, err == nil, "seen_key validation for %q (error: %v)", tt.value, err)
		})
	}
}
