package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "gymdesk"

type Config struct {
	App    AppConfig
	Store  StoreConfig
	Plans  PlansConfig
	Alerts AlertsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Plans.Types) == 0 {
		return nil, fmt.Errorf("at least one membership type is required")
	}
	if cfg.Alerts.ExpiryDays < 0 {
		return nil, fmt.Errorf("expiry alert window must be non-negative")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"GYMDESK_APP_ENV" default:"dev"`
	Port     string `envconfig:"GYMDESK_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"GYMDESK_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type StoreConfig struct {
	DataDir string `envconfig:"GYMDESK_DATA_DIR" default:"data"`
}

// PlansConfig carries the enumerated membership plan set. The set is
// operator-configured, not baked into the code.
type PlansConfig struct {
	Types []string `envconfig:"GYMDESK_MEMBERSHIP_TYPES" default:"Monthly,Quarterly,Yearly"`
}

// Contains reports whether name matches one of the configured plan types.
func (p PlansConfig) Contains(name string) bool {
	for _, t := range p.Types {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

type AlertsConfig struct {
	ExpiryDays int `envconfig:"GYMDESK_EXPIRY_ALERT_DAYS" default:"7"`
}
