// Package config loads and persists the shell configuration. Values come
// from, in increasing precedence: built-in defaults, the YAML file,
// CLIK_* environment variables and runtime overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/paths"
)

const (
	envPrefix   = "CLIK"
	configType  = "yaml"
	filePerm    = 0600
	dirPerm     = 0700
	logLevelKey = "log_level"
)

// ErrUnknownKey is returned for keys not listed in domain.ConfigKeys.
var ErrUnknownKey = errors.New("config: unknown key")

// InvalidValueError is returned by Set when a value does not parse as the
// key's type.
type InvalidValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("config: invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

var clocks = args.NewParser("clock", func(s string) (string, error) {
	switch c := strings.ToLower(s); c {
	case "12h", "24h":
		return c, nil
	default:
		return "", fmt.Errorf("expected 12h or 24h")
	}
})

var logLevels = args.NewParser("level", func(s string) (string, error) {
	switch l := strings.ToLower(s); l {
	case "debug", "info", "warn", "error":
		return l, nil
	default:
		return "", fmt.Errorf("expected one of debug, info, warn, error")
	}
})

// valueTypes holds the parser each typed key is validated with. Keys not
// listed accept any string.
var valueTypes = map[string]args.Parser{
	"color":         args.Bool,
	"log_enabled":   args.Bool,
	logLevelKey:     logLevels,
	"clock":         clocks,
	"history_limit": args.Uint,
}

// Config is a viper-backed domain.ConfigProvider. Safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	path      string
	v         *viper.Viper
	overrides map[string]string
}

// Load reads the configuration at path. An empty path selects
// paths.ConfigFilePath(). A missing file is not an error; it is created on
// the first Set.
func Load(path string) (*Config, error) {
	if path == "" {
		path = paths.ConfigFilePath()
	}

	c := &Config{path: path, overrides: map[string]string{}}
	if err := c.reload(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) reload() error {
	v := viper.New()
	v.SetConfigFile(c.path)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range domain.ConfigKeys {
		v.SetDefault(key.Name, defaultValue(key))
	}

	info, err := os.Stat(c.path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("configuration path %s is a directory", c.path)
	case err == nil:
		if readErr := v.ReadInConfig(); readErr != nil {
			return fmt.Errorf("read configuration from %s: %w", c.path, readErr)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat configuration %s: %w", c.path, err)
	}

	for key, value := range c.overrides {
		v.Set(key, value)
	}

	c.v = v
	return nil
}

func defaultValue(key domain.ConfigKey) string {
	if key.Name == "db_path" {
		return paths.DBPath()
	}
	return key.Default
}

// Path returns the file the configuration is persisted to.
func (c *Config) Path() string {
	return c.path
}

// Get returns the effective value of key. The boolean is false for keys
// not in domain.ConfigKeys.
func (c *Config) Get(key string) (string, bool) {
	if _, ok := domain.LookupConfigKey(key); !ok {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetString(key), true
}

// All returns the effective value of every known key.
func (c *Config) All() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = c.v.GetString(key.Name)
	}
	return result
}

// Keys returns the known keys in display order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		keys = append(keys, key.Name)
	}
	return keys
}

// String returns the effective value of key, or "" when unknown.
func (c *Config) String(key string) string {
	value, _ := c.Get(key)
	return value
}

// Bool returns key parsed as a boolean. Unparseable values are false.
func (c *Config) Bool(key string) bool {
	parsed, err := args.Bool.Parse(c.String(key))
	if err != nil {
		return false
	}
	return parsed.(bool)
}

// Int returns key parsed as an integer, or fallback when it does not parse.
func (c *Config) Int(key string, fallback int) int {
	parsed, err := args.Int.Parse(c.String(key))
	if err != nil {
		return fallback
	}
	return parsed.(int)
}

// Override sets key for the lifetime of this Config without persisting it.
// Used for command line flags.
func (c *Config) Override(key, value string) error {
	normalized, err := normalize(key, value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[key] = normalized
	c.v.Set(key, normalized)
	return nil
}

// Set validates value, writes it to the file and reloads.
func (c *Config) Set(key, value string) error {
	normalized, err := normalize(key, value)
	if err != nil {
		return err
	}
	return c.update(func(values map[string]any) {
		values[key] = normalized
	})
}

// Unset removes key from the file so its default applies again.
func (c *Config) Unset(key string) error {
	if _, ok := domain.LookupConfigKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return c.update(func(values map[string]any) {
		delete(values, key)
	})
}

func (c *Config) update(mutate func(values map[string]any)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return withLock(c.path, func() error {
		values, err := c.fileValues()
		if err != nil {
			return err
		}
		mutate(values)

		out := viper.New()
		out.SetConfigType(configType)
		out.SetConfigPermissions(filePerm)
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out.Set(name, values[name])
		}
		if err := out.WriteConfigAs(c.path); err != nil {
			return fmt.Errorf("write configuration to %s: %w", c.path, err)
		}
		if err := os.Chmod(c.path, filePerm); err != nil {
			return fmt.Errorf("chmod configuration %s: %w", c.path, err)
		}
		return c.reload()
	})
}

// fileValues returns only what the file holds, without defaults or env.
func (c *Config) fileValues() (map[string]any, error) {
	file := viper.New()
	file.SetConfigFile(c.path)
	file.SetConfigType(configType)
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err := file.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read configuration from %s: %w", c.path, err)
	}
	return file.AllSettings(), nil
}

func normalize(key, value string) (string, error) {
	if _, ok := domain.LookupConfigKey(key); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	parser, typed := valueTypes[key]
	if !typed {
		return value, nil
	}
	parsed, err := parser.Parse(value)
	if err != nil {
		return "", &InvalidValueError{Key: key, Value: value, Err: err}
	}
	return fmt.Sprint(parsed), nil
}

// Verify Config implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Config)(nil)
