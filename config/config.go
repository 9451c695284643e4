// Package config loads command configuration from an optional file and the
// environment into a tagged struct.
package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/vapid/core/validator"
)

// DefaultEnvPrefix prefixes environment overrides, VAPID_LOG_LEVEL for log.level
const DefaultEnvPrefix = "VAPID"

// Config manages application configuration
type Config struct {
	mu        sync.Mutex
	viper     *viper.Viper
	validate  validator.Validator
	target    any
	loader    Loader
	file      string
	envPrefix string
}

// Option configures a Config
type Option func(*Config)

// WithFile reads configuration from path. The format follows the extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithEnvPrefix changes the environment prefix
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets a custom validator
func WithValidator(v validator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader replaces the default file and environment loader
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// New creates a Config that fills target, a pointer to a struct
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:     viper.New(),
		validate:  validator.Validate,
		target:    target,
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader(c.file, c.envPrefix, c.viper, c.validate)
	}
	return c
}

// Load fills the target: defaults from struct tags, then the file, then the
// environment. The result is validated.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// GetViper returns the underlying viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
