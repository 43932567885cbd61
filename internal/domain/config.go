package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `config`.
var ConfigKeys = []ConfigKey{
	{
		Name:        "prompt",
		Default:     "clik> ",
		Description: "Prompt shown before each input line",
	},
	{
		Name:        "color",
		Default:     "true",
		Description: "Colorize output when attached to a terminal (true/false)",
	},
	{
		Name:        "log_enabled",
		Default:     "false",
		Description: "Write a log file (true/false)",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
	},
	{
		Name:        "db_path",
		Default:     "", // Set dynamically to paths.DBPath()
		Description: "Path to the SQLite database",
	},
	{
		Name:        "clock",
		Default:     "24h",
		Description: "Time display in history and session: 24h or 12h",
	},
	{
		Name:        "history_limit",
		Default:     "20",
		Description: "Entries shown by 'history' without an argument",
	},
}

// LookupConfigKey returns the metadata for name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
