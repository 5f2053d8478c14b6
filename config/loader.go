package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort         = 16181
	defaultTimeoutMS    = 10000
	defaultRefreshMS    = 10000 // station and vehicle views refresh every 10s
	defaultConfigFile   = "config.yml"
	alternateConfigFile = "./deploy/config.yml"
)

// Load reads and validates the application configuration. With no arguments
// it tries the default paths; otherwise the first readable path wins.
func Load(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{defaultConfigFile, alternateConfigFile}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	for key, agency := range cfg.Agencies {
		if err := v.Struct(agency); err != nil {
			return nil, fmt.Errorf("agency %q: %w", key, err)
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Fetch.TimeoutMS == 0 {
		cfg.Fetch.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Fetch.RefreshIntervalMS == 0 {
		cfg.Fetch.RefreshIntervalMS = defaultRefreshMS
	}
	return &cfg, nil
}

// Agency looks up one agency by registry key.
func (c *AppConfig) Agency(key string) (Agency, bool) {
	a, ok := c.Agencies[key]
	return a, ok
}

// EnabledAgencies returns the keys of all non-disabled agencies in a stable order.
func (c *AppConfig) EnabledAgencies() []string {
	keys := make([]string, 0, len(c.Agencies))
	for k, a := range c.Agencies {
		if a.Disabled {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FetchTimeout returns the snapshot fetch timeout as a duration.
func (c *AppConfig) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutMS) * time.Millisecond
}

// RefreshInterval returns the scheduler cadence as a duration.
func (c *AppConfig) RefreshInterval() time.Duration {
	return time.Duration(c.Fetch.RefreshIntervalMS) * time.Millisecond
}

// MaxAge returns the cache freshness window; zero means always refetch.
func (c *AppConfig) MaxAge() time.Duration {
	return time.Duration(c.Fetch.MaxAgeMS) * time.Millisecond
}
