package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds deploy-time configuration, read from the process
// environment with the ADCTL_ prefix. A .env file is honored when present.
type Config struct {
	// ProjectEndpoint is the base URL of the agent service project the
	// deployer targets. Required for deployment.
	ProjectEndpoint string `env:"PROJECT_ENDPOINT" envDefault:""`
	// APIToken is the ambient bearer credential. Credential acquisition
	// flows are owned by the environment, not this tool.
	APIToken       string        `env:"API_TOKEN" envDefault:""`
	APIVersion     string        `env:"API_VERSION" envDefault:"2025-05-01"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	Telemetry TelemetryConfig
}

// TelemetryConfig captures the trace exporter settings used by the deploy
// command. Disabled by default; when disabled no exporter is created.
type TelemetryConfig struct {
	Enabled      bool    `env:"TELEMETRY_ENABLED" envDefault:"false"`
	OTLPEndpoint string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceName  string  `env:"TELEMETRY_SERVICE_NAME" envDefault:"adctl"`
	SampleRate   float64 `env:"TELEMETRY_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ADCTL_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// RequireEndpoint returns an error naming the variable when the project
// endpoint is unset.
func (c *Config) RequireEndpoint() error {
	if c.ProjectEndpoint == "" {
		return fmt.Errorf("ADCTL_PROJECT_ENDPOINT environment variable not set")
	}
	return nil
}
