// Package config provides configuration loading and management for the entity loader.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/progress"
	"github.com/c360studio/entityloader/registry"
	"github.com/c360studio/entityloader/remap"
	"github.com/c360studio/entityloader/vocabulary/entitydata"
)

// Config represents the complete entity loader configuration
type Config struct {
	Registry RegistryConfig `yaml:"registry" envPrefix:"REGISTRY_"`
	Concepts ConceptsConfig `yaml:"concepts" envPrefix:"CONCEPTS_"`
	Progress ProgressConfig `yaml:"progress" envPrefix:"PROGRESS_"`
	Metrics  MetricsConfig  `yaml:"metrics" envPrefix:"METRICS_"`
}

// RegistryConfig configures the entity registry connection
type RegistryConfig struct {
	// URL is the registry base URL; entities live under {URL}/entity
	URL string `yaml:"url" env:"URL"`
	// APIKey is sent in the api-key header of every request
	APIKey string `yaml:"api_key" env:"API_KEY"`
	// Timeout bounds a single request (default: 30s)
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// DocumentFormat is the serialization sent to the registry (default: jsonld)
	DocumentFormat string `yaml:"document_format" env:"DOCUMENT_FORMAT"`
	// Retry applies to updates and fetches only
	Retry registry.RetryConfig `yaml:"retry" envPrefix:"RETRY_"`
}

// ConceptsConfig configures concept selection and rewriting
type ConceptsConfig struct {
	// Class is the type IRI that marks a subject as a concept
	Class string `yaml:"class" env:"CLASS"`
	// IdentityPredicates are added to the registered identity predicates
	IdentityPredicates []string `yaml:"identity_predicates" env:"IDENTITY_PREDICATES" envSeparator:","`
	// PreserveIdentity keeps identity predicate objects pointing at local IRIs
	PreserveIdentity bool `yaml:"preserve_identity" env:"PRESERVE_IDENTITY"`
	// RewriteSource is "local" or "registry"
	RewriteSource string `yaml:"rewrite_source" env:"REWRITE_SOURCE"`
}

// ProgressConfig configures progress publishing
type ProgressConfig struct {
	// NATSURL enables publishing progress events when set
	NATSURL string `yaml:"nats_url" env:"NATS_URL"`
	// Subject is the NATS subject for progress events
	Subject string `yaml:"subject" env:"SUBJECT"`
}

// MetricsConfig configures metrics export
type MetricsConfig struct {
	// File receives the metrics in Prometheus text format at the end of a run
	File string `yaml:"file" env:"FILE"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Timeout:        registry.DefaultTimeout,
			DocumentFormat: string(codec.FormatJSONLD),
			Retry:          registry.DefaultRetryConfig(),
		},
		Concepts: ConceptsConfig{
			Class:            entitydata.ClassConcept,
			PreserveIdentity: true,
			RewriteSource:    string(remap.SourceLocal),
		},
		Progress: ProgressConfig{
			Subject: progress.DefaultSubject,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.RegistryURL(); err != nil {
		return err
	}
	if c.Registry.APIKey == "" {
		return fmt.Errorf("registry.api_key is required")
	}
	if c.Registry.Timeout < 0 {
		return fmt.Errorf("registry.timeout must not be negative")
	}
	format, err := codec.ParseFormat(c.Registry.DocumentFormat)
	if err != nil {
		return fmt.Errorf("registry.document_format: %w", err)
	}
	if info, _ := codec.GetFormatInfo(format); !info.CanEncode {
		return fmt.Errorf("registry.document_format %s cannot be written", format)
	}
	if c.Registry.Retry.MaxAttempts < 1 {
		return fmt.Errorf("registry.retry.max_attempts must be at least 1")
	}
	if c.Registry.Retry.BackoffBase < 0 || c.Registry.Retry.MaxBackoff < c.Registry.Retry.BackoffBase {
		return fmt.Errorf("registry.retry backoff must satisfy 0 <= backoff_base <= max_backoff")
	}
	if c.Concepts.Class == "" {
		return fmt.Errorf("concepts.class is required")
	}
	if _, err := remap.ParseRewriteSource(c.Concepts.RewriteSource); err != nil {
		return fmt.Errorf("concepts.rewrite_source: %w", err)
	}
	return nil
}

// RegistryURL parses the registry URL, which must be an absolute http(s) URL.
func (c *Config) RegistryURL() (*url.URL, error) {
	u, err := url.Parse(c.Registry.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("the URL %s is malformed", c.Registry.URL)
	}
	return u, nil
}

// RewritePolicy builds the rewrite policy from the registered identity
// predicates and any configured extras.
func (c *Config) RewritePolicy() remap.RewritePolicy {
	policy := remap.DefaultRewritePolicy()
	policy.PreserveIdentity = c.Concepts.PreserveIdentity
	policy.IdentityPredicates = append(policy.IdentityPredicates, c.Concepts.IdentityPredicates...)
	return policy
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.mergeFile(path); err != nil {
		return nil, err
	}
	return config, nil
}

// mergeFile overlays the fields present in a YAML file.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Registry
	if other.Registry.URL != "" {
		c.Registry.URL = other.Registry.URL
	}
	if other.Registry.APIKey != "" {
		c.Registry.APIKey = other.Registry.APIKey
	}
	if other.Registry.Timeout != 0 {
		c.Registry.Timeout = other.Registry.Timeout
	}
	if other.Registry.DocumentFormat != "" {
		c.Registry.DocumentFormat = other.Registry.DocumentFormat
	}

	// Concepts
	if other.Concepts.Class != "" {
		c.Concepts.Class = other.Concepts.Class
	}
	if other.Concepts.RewriteSource != "" {
		c.Concepts.RewriteSource = other.Concepts.RewriteSource
	}

	// Progress
	if other.Progress.NATSURL != "" {
		c.Progress.NATSURL = other.Progress.NATSURL
	}

	// Metrics
	if other.Metrics.File != "" {
		c.Metrics.File = other.Metrics.File
	}
}
