package contact

import "time"

// Config holds the form lifecycle settings.
type Config struct {
	FormTTL    time.Duration `env:"CONTACT_FORM_TTL" envDefault:"30m"`
	MaxForms   int           `env:"CONTACT_MAX_FORMS" envDefault:"10000"`
	ResetDelay time.Duration `env:"CONTACT_RESET_DELAY" envDefault:"5s"`
}

func (c Config) withDefaults() Config {
	if c.FormTTL <= 0 {
		c.FormTTL = 30 * time.Minute
	}
	if c.MaxForms <= 0 {
		c.MaxForms = 10000
	}
	if c.ResetDelay <= 0 {
		c.ResetDelay = 5 * time.Second
	}
	return c
}
