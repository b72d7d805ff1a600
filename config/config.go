package config

import (
	"fmt"

	"github.com/spf13/viper"

	"MedivaDesk/phone"
)

// Config carries everything the gateway needs from the environment.
type Config struct {
	APIBaseURL    string `mapstructure:"HOSPITAL_API_URL"`
	SessionFile   string `mapstructure:"SESSION_FILE"`
	ContactDigits int    `mapstructure:"CONTACT_DIGITS"`
}

// Load reads configuration from the environment. Every key has a default so
// a bare environment still yields a runnable gateway pointed at the local
// storage API.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("HOSPITAL_API_URL", "http://localhost:8000")
	v.SetDefault("SESSION_FILE", ".mediva-session")
	v.SetDefault("CONTACT_DIGITS", phone.DefaultDigits)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %s", err.Error())
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("HOSPITAL_API_URL must not be empty")
	}
	if cfg.ContactDigits <= 0 {
		return nil, fmt.Errorf("CONTACT_DIGITS must be positive, got %d", cfg.ContactDigits)
	}
	return &cfg, nil
}

// PhoneRule builds the contact rule configured for this deployment.
func (c *Config) PhoneRule() phone.Rule {
	return phone.Rule{Digits: c.ContactDigits}
}
