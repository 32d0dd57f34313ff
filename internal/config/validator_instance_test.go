package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	assert.Same(t, validatorInstance(), validatorInstance())
}

func TestEndpointURLValidation(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", false},
		{"space", " ", false},
		{"valid https", "https://functions.example.dev/abc", true},
		{"valid http with port", "http://localhost:8080/search", true},
		{"no host", "https:///path", false},
		{"invalid scheme", "ftp://example.com/search", false},
		{"leading space", " https://example.com", false},
		{"relative", "/search", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isEndpointURL(tt.url))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Default()))

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, Validate(nil), &vErr)

	cfg := Default()
	cfg.API.UserID = ""
	require.ErrorAs(t, Validate(cfg), &vErr)
	assert.Equal(t, "api.user_id", vErr.Field)
	assert.Equal(t, "is required", vErr.Message)

	cfg = Default()
	cfg.API.Timeout = -1
	require.ErrorAs(t, Validate(cfg), &vErr)
	assert.Equal(t, "api.timeout", vErr.Field)

	cfg = Default()
	cfg.Theme = cfg.Theme.WithCardSize("huge")
	require.ErrorAs(t, Validate(cfg), &vErr)
	assert.Equal(t, "theme.card_size", vErr.Field)
	assert.Contains(t, vErr.Message, "small medium large")
}
