package internal

import "time"

// Config is the environment surface of the service. The pipeline itself
// never reads the environment: every value is injected from here.
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT,required=true"`

	FeedURL      string        `env:"FEED_URL,required=true"`
	FeedTimeout  time.Duration `env:"FEED_TIMEOUT,default=30s"`
	FeedCacheTTL time.Duration `env:"FEED_CACHE_TTL,default=15s"`
	// CacheFilepath switches the snapshot cache to disk, which makes it
	// inspectable with tools/snapshot-inspect. Empty means in-memory.
	CacheFilepath string `env:"CACHE_FILEPATH"`

	OpenAIAPIKey      string        `env:"OPENAI_API_KEY,required=true"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIModel       string        `env:"OPENAI_MODEL,default=gpt-3.5-turbo"`
	OpenAITemperature float64       `env:"OPENAI_TEMPERATURE,default=0.3"`
	OpenAIMaxTokens   int           `env:"OPENAI_MAX_TOKENS,default=300"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT,default=60s"`

	ContextBudget int    `env:"CONTEXT_BUDGET,default=6000"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}
