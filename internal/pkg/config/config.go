package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving time-based configuration values.
type TimeConfig interface {
	// GetSecond retrieves the value associated with the given key as seconds.
	// Missing or non-numeric values yield zero.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value associated with the given key as minutes.
	// Missing or non-numeric values yield zero.
	GetMinute(key string) time.Duration
}

// NumberConfig defines helpers for retrieving numeric configuration values.
type NumberConfig interface {
	// GetInt retrieves the value associated with the given key as an int.
	GetInt(key string) int

	// GetUint64 retrieves the value associated with the given key as a uint64.
	GetUint64(key string) uint64

	// GetFloat64 retrieves the value associated with the given key as a float64.
	GetFloat64(key string) float64
}

// Config defines a set of methods for retrieving configuration values of various types.
//
// Implementations resolve keys written as dotted paths ("mail.from"). Process
// environment variables take precedence over file values; the variable name is
// the upper-cased key with dots replaced by underscores ("MAIL_FROM").
type Config interface {
	io.Closer
	TimeConfig
	NumberConfig

	// IsSet reports whether the key has a value from any source.
	IsSet(key string) bool

	// GetBool retrieves the value associated with the given key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with the given key as a string.
	// Surrounding whitespace is trimmed and missing keys yield "".
	GetString(key string) string

	// GetArray retrieves the value associated with the given key as a slice of strings.
	// Configuration value is stored with format <element1>,<element2>,...
	// Elements are trimmed and empty elements dropped; a missing key yields an
	// empty slice.
	GetArray(key string) []string
}
