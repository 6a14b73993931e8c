package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// QA_ADDR is the base URL of a running instance, e.g. http://localhost:8000
	Addr string `envconfig:"QA_ADDR"`
	// E2E_DEBUG_JSON allows dumping full HTTP request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
