package config

// Config carries tool defaults loaded from an optional config file.
// Command-line flags always win over file values.
type Config struct {
	Logging LoggingConfig `json:"logging"`
	Output  OutputConfig  `json:"output"`
	Crontab CrontabConfig `json:"crontab"`
}

type LoggingConfig struct {
	// Level is the diagnostics level on stderr ("trace".."error").
	// Defaults to "warn" so normal runs stay quiet.
	Level string `json:"level,omitempty"`
}

// OutputConfig controls presentation defaults.
type OutputConfig struct {
	// Color is "auto" (default), "always", or "never".
	Color string `json:"color,omitempty"`
	// NextRuns is the default number of upcoming fire times to preview.
	NextRuns int `json:"next_runs,omitempty"`
}

// CrontabConfig controls where entries are written.
type CrontabConfig struct {
	// File overrides cron file auto-detection when --file is not given.
	File string `json:"file,omitempty"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "warn"},
		Output:  OutputConfig{Color: "auto", NextRuns: 3},
	}
}
