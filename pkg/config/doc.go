// Package config loads the process configuration from YAML with
// built-in defaults.
package config
