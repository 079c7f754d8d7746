// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo: a later source only fills fields the
// earlier sources left at their zero value. After merging, defaults are
// applied and the result is validated.
package config
