package main

import (
	"time"

	contactmod "github.com/dmitrymomot/landkit/modules/contact"
	"github.com/dmitrymomot/landkit/pkg/archive"
	"github.com/dmitrymomot/landkit/pkg/email"
	"github.com/dmitrymomot/landkit/pkg/httpserver"
	"github.com/dmitrymomot/landkit/pkg/leadstore"
	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/metrics"
	"github.com/dmitrymomot/landkit/pkg/ratelimiter"
	redisconn "github.com/dmitrymomot/landkit/pkg/redis"
)

type appConfig struct {
	Name      string `env:"APP_NAME" envDefault:"landkit"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	SitesFile string `env:"SITES_FILE"` // embedded catalogue when empty
	ThemesDir string `env:"THEMES_DIR"` // embedded manifests when empty
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
	// BehindProxy trusts CF-Connecting-IP, X-Forwarded-For and friends.
	BehindProxy bool `env:"BEHIND_PROXY" envDefault:"false"`

	Log       logger.Config
	Server    httpserver.Config
	Redis     redisconn.Config
	RateLimit ratelimiter.Config
	Metrics   metrics.Config
	Contact   contactmod.Config
	Delivery  deliveryConfig
	Email     email.Config
	LeadStore leadstore.Config
	Archive   archive.Config
}

// deliveryConfig selects where submissions go.
type deliveryConfig struct {
	// Mode is "simulated" (delay plus random failures) or "live".
	Mode string `env:"DELIVERY_MODE" envDefault:"simulated"`
	// NotifyEmail overrides the per-site contact_email recipient.
	NotifyEmail    string        `env:"CONTACT_NOTIFY_EMAIL"`
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	StoreLeads     bool          `env:"STORE_LEADS" envDefault:"true"`

	SimulatedDelay       time.Duration `env:"SIMULATED_DELAY" envDefault:"1500ms"`
	SimulatedFailureRate float64       `env:"SIMULATED_FAILURE_RATE" envDefault:"0.05"`
}

const (
	deliverySimulated = "simulated"
	deliveryLive      = "live"
)
