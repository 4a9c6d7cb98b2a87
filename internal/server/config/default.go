package config

// Default configuration values.
const (
	DefaultPort    = 7878
	DefaultThreads = 1
	DefaultIndex   = "index.html"
	DefaultDecode  = DecodeNarrow

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	IPv4Host = "0.0.0.0"
	IPv6Host = "::1"
)

// Decode modes.
const (
	DecodeNarrow = "narrow"
	DecodeFull   = "full"
)

// Default returns the default configuration. Root is left empty; the
// caller fills it with the positional PATH or the working directory.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			Port:    DefaultPort,
			Threads: DefaultThreads,
			Index:   DefaultIndex,
			Decode:  DefaultDecode,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Access: true,
		},
	}
}
