// Package config handles configuration loading, parsing, and validation
// for the application. Settings come from environment variables (TUTOR_
// prefix) and an optional YAML config file, with environment variables
// taking precedence.
package config
