// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is unset or not an integer.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvUint64 is GetEnvInt for unsigned 64-bit values such as seeds.
func GetEnvUint64(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvLogLevel returns the log level named by the environment variable,
// or fallback if it is unset. Unknown level names are an error.
func GetEnvLogLevel(key string, fallback log.Level) (log.Level, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}
