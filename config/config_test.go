package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, ".mediva-session", cfg.SessionFile)
	assert.Equal(t, 11, cfg.ContactDigits)
	assert.Equal(t, 14, cfg.PhoneRule().MaxLen())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOSPITAL_API_URL", "http://records.internal:9000")
	t.Setenv("CONTACT_DIGITS", "9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://records.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, 9, cfg.ContactDigits)
	assert.Equal(t, 12, cfg.PhoneRule().MaxLen())
}

func TestLoad_RejectsNonPositiveDigits(t *testing.T) {
	t.Setenv("CONTACT_DIGITS", "-3")

	_, err := Load()
	assert.Error(t, err)
}
