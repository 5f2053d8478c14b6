// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The config document doubles as the agency registry: every tracked transit
// agency is declared under agencies with its store endpoint, shape source and
// display metadata, and is looked up by key at runtime.
package config
