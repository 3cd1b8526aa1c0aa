package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIHost = "canto.com"
	DefaultListen  = ":8080"
)

// Config carries the Canto connection settings and the sidecar's own
// addresses. It is loaded once and passed explicitly to every constructor
// that needs it.
type Config struct {
	// Domain is the Canto tenant, the `acme` in acme.canto.com.
	Domain string `yaml:"domain"`
	// APIHost is the Canto host suffix, canto.com unless the tenant runs
	// on a regional cluster such as canto.global.
	APIHost string `yaml:"api_host"`
	// Token is the Canto API bearer token.
	Token string `yaml:"token"`
	// APIURL overrides the https://<domain>.<api_host> base URL for
	// nonstandard deployments.
	APIURL string `yaml:"api_url"`

	// PublicURL is the externally reachable base URL of the sidecar,
	// used for proxy thumbnail and default thumbnail URLs.
	PublicURL string `yaml:"public_url"`
	// Listen is the sidecar bind address.
	Listen string `yaml:"listen"`

	// NonceSecret signs AJAX nonce tokens. A random secret is generated
	// at startup when left empty, which invalidates nonces on restart.
	NonceSecret string `yaml:"nonce_secret"`

	// CacheBackend selects the cache store, "memory" (default) or "redis".
	CacheBackend string `yaml:"cache"`
	RedisAddr    string `yaml:"redis_addr"`
	RedisDB      int    `yaml:"redis_db"`
}

// Load reads the yaml config at path and applies environment overrides.
// A missing file is not an error so the sidecar can run on env vars alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("could not parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"CANTO_DOMAIN":           &cfg.Domain,
		"CANTO_API_HOST":         &cfg.APIHost,
		"CANTO_TOKEN":            &cfg.Token,
		"CANTO_API_URL":          &cfg.APIURL,
		"CANTO_FIELD_PUBLIC_URL": &cfg.PublicURL,
		"CANTO_FIELD_LISTEN":     &cfg.Listen,
		"CANTO_FIELD_REDIS":      &cfg.RedisAddr,
	}
	for name, target := range overrides {
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.APIHost == "" {
		cfg.APIHost = DefaultAPIHost
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = "memory"
	}
}

// APIBase returns the base URL of the Canto REST API without a trailing
// slash.
func (c *Config) APIBase() string {
	if c.APIURL != "" {
		return strings.TrimSuffix(c.APIURL, "/")
	}
	return "https://" + c.Domain + "." + c.APIHost
}

// IsConfigured reports whether both the domain and the token are present.
// Their absence is a configuration error, not a transient fault.
func (c *Config) IsConfigured() bool {
	return (c.Domain != "" || c.APIURL != "") && c.Token != ""
}

// ConfigErrors lists the missing settings in a stable order for user-facing
// messages.
func (c *Config) ConfigErrors() []string {
	var errs []string
	if c.Domain == "" && c.APIURL == "" {
		errs = append(errs, "Canto domain not configured")
	}
	if c.Token == "" {
		errs = append(errs, "Canto API token not configured")
	}
	return errs
}
