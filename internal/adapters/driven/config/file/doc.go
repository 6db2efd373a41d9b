// Package file provides TOML-based configuration loading.
// Configuration lives at ~/.presscan/config.toml unless overridden.
package file
