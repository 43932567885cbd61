package domain

import "time"

// EntryStore defines operations on the shell's key/value entries.
type EntryStore interface {
	// Put creates or replaces an entry.
	Put(key, value string) error

	// Get returns the value of an entry and whether it exists.
	Get(key string) (string, bool, error)

	// Delete removes an entry and reports whether it existed.
	Delete(key string) (bool, error)

	// Keys returns all entry keys in ascending order.
	Keys() ([]string, error)
}

// Journal records every line handed to the dispatcher.
type Journal interface {
	// Record appends an entry.
	Record(entry JournalEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]JournalEntry, error)
}

// JournalEntry is one dispatched line and its outcome.
type JournalEntry struct {
	ID        int64
	SessionID string
	Line      string
	Command   string
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Failed reports whether the line returned an error.
func (e JournalEntry) Failed() bool {
	return e.Error != ""
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// All returns all configuration values.
	All() map[string]string

	// Set sets and persists a configuration value.
	Set(key, value string) error

	// Unset restores the default of a configuration key.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler applies semantic styling to output text.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}
