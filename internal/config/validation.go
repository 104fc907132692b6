package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const maxPrecision = 20

func validate(c *Config) error {
	if err := c.Log.validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

func (l *LogConfig) validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch l.Encoding {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("log.encoding must be json or console, got %q", l.Encoding)
	}
}

// Validate checks the output settings; flags overriding them call it again.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, got %q", o.Format)
	}
	if o.Precision < -1 || o.Precision > maxPrecision {
		return fmt.Errorf("output.precision must be within [-1, %d], got %d", maxPrecision, o.Precision)
	}
	return nil
}
