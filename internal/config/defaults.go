package config

import "github.com/spf13/viper"

const (
	defaultLogLevel        = "warn"
	defaultLogEncoding     = "console"
	defaultOutputFormat    = FormatText
	defaultOutputPrecision = -1
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.encoding", defaultLogEncoding)
	v.SetDefault("output.format", defaultOutputFormat)
	v.SetDefault("output.precision", defaultOutputPrecision)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: defaultLogLevel, Encoding: defaultLogEncoding},
		Output: OutputConfig{Format: defaultOutputFormat, Precision: defaultOutputPrecision},
	}
}
