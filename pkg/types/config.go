package types

import "errors"

// Config holds CLI output and logging parameters.
type Config struct {
	Format    string `json:"format" yaml:"format" mapstructure:"format"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`
}

// Supported export formats.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrFormatEmpty     = errors.New("format must not be empty")
	ErrFormatUnknown   = errors.New("unknown format")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatJSON:  true,
	FormatJSONL: true,
	FormatYAML:  true,
}

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{Format: FormatJSON, LogLevel: LogLevelWarn}
}

// Validate checks that the Config is well-formed. An empty LogLevel is
// accepted and means the default.
func (c Config) Validate() error {
	if c.Format == "" {
		return ErrFormatEmpty
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
