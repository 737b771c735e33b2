package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emazahmed/edu-hotel/internal/pricing"
)

// Config is the application configuration, loaded from YAML with
// ${ENV_VAR} placeholder expansion.
type Config struct {
	Pricing struct {
		Policy string `yaml:"policy"` // room_only | taxes_and_fees
	} `yaml:"pricing"`

	Payment struct {
		DelaySeconds int `yaml:"delay_seconds"`
	} `yaml:"payment"`

	Login struct {
		IntervalSeconds int `yaml:"interval_seconds"`
		Burst           int `yaml:"burst"`
	} `yaml:"login"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Seed struct {
		Path string `yaml:"path"`
	} `yaml:"seed"`
}

// Load reads the config file. An empty path falls back to
// configs/config.yaml; a missing file yields the built-in defaults,
// since the demo app runs fine without any configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Pricing.Policy != "" && !pricing.Policy(cfg.Pricing.Policy).Valid() {
		return nil, fmt.Errorf("unknown pricing policy %q", cfg.Pricing.Policy)
	}
	return &cfg, nil
}

// PricingPolicy returns the configured policy, defaulting to the
// taxes-and-fees variant.
func (c *Config) PricingPolicy() pricing.Policy {
	if c.Pricing.Policy == "" {
		return pricing.PolicyTaxesAndFees
	}
	return pricing.Policy(c.Pricing.Policy)
}

// PaymentDelay returns the simulated payment round-trip duration.
// The original app waited two seconds.
func (c *Config) PaymentDelay() time.Duration {
	if c.Payment.DelaySeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Payment.DelaySeconds) * time.Second
}

// LoginInterval returns the steady-state spacing of login attempts.
func (c *Config) LoginInterval() time.Duration {
	if c.Login.IntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Login.IntervalSeconds) * time.Second
}

// LoginBurst returns the login attempt burst allowance.
func (c *Config) LoginBurst() int {
	if c.Login.Burst <= 0 {
		return 10
	}
	return c.Login.Burst
}
