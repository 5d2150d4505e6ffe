package zeptomail

import "time"

const (
	// DefaultRegion is used when Config.Region is empty.
	DefaultRegion = "us"

	// DefaultAPIVersion is used when Config.APIVersion is empty.
	DefaultAPIVersion = "v1.1"

	// DefaultTimeout bounds a single HTTP exchange when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	// MinAPIKeyLength is the shortest API key accepted by New.
	MinAPIKeyLength = 10
)

// DefaultRegions maps region codes to the ZeptoMail API domain suffix.
var DefaultRegions = map[string]string{
	"us": "com",
	"eu": "eu",
	"in": "in",
	"au": "com.au",
	"jp": "jp",
	"ca": "ca",
	"sa": "sa",
	"cn": "com.cn",
}

// Config holds ZeptoMail provider configuration.
// Embed this in your app config for env parsing with caarlos0/env or viper.
type Config struct {
	// APIKey is the Send Mail token, sent verbatim in the Authorization header
	// (e.g., "Zoho-enczapikey ...").
	APIKey string `env:"ZEPTOMAIL_API_KEY" mapstructure:"api_key"`

	// Region selects the API domain (default: us). Ignored when Endpoint is set.
	Region string `env:"ZEPTOMAIL_REGION" envDefault:"us" mapstructure:"region"`

	// Endpoint overrides the region-derived base URL (optional).
	Endpoint string `env:"ZEPTOMAIL_ENDPOINT" mapstructure:"endpoint"`

	// APIVersion is the API path version (default: v1.1).
	APIVersion string `env:"ZEPTOMAIL_API_VERSION" envDefault:"v1.1" mapstructure:"api_version"`

	// Timeout bounds each send (default: 30s).
	Timeout time.Duration `env:"ZEPTOMAIL_TIMEOUT" envDefault:"30s" mapstructure:"timeout"`

	// Logging enables send lifecycle log records.
	Logging bool `env:"ZEPTOMAIL_LOGGING" envDefault:"false" mapstructure:"logging"`

	// Regions overrides the region to domain table (default: DefaultRegions).
	Regions map[string]string `mapstructure:"regions"`
}

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if len(c.Regions) == 0 {
		c.Regions = DefaultRegions
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.APIKey == "" {
		return wrapConfigError("API key is required")
	}
	if len(c.APIKey) < MinAPIKeyLength {
		return wrapConfigError("API key must be at least %d characters", MinAPIKeyLength)
	}
	return nil
}
