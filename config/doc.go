// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every setting has a default, so running without a config file is valid;
// command line flags override file values.
package config
