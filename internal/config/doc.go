// Package config loads and merges the go-web-kit configuration from
// environment variables, command-line flags, and an optional YAML file,
// overlaying the result on top of built-in defaults.
package config
