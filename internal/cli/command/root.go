package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/brownhttpd/internal/infra/buildinfo"
	"github.com/yndnr/brownhttpd/internal/server/config"
)

// Flag names.
const (
	flagPort        = "port"
	flagThreads     = "threads"
	flagDaemon      = "daemon"
	flagIPv6        = "ipv6"
	flagChroot      = "chroot"
	flagIndex       = "index"
	flagDecode      = "decode"
	flagMetricsAddr = "metrics-addr"
	flagRateLimit   = "rate-limit"
	flagMaxConns    = "max-conns"
	flagTimeout     = "timeout"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagQuiet       = "quiet"
	flagCompletions = "completions"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 buildinfo.Name,
		Usage:                "Serve a directory over HTTP",
		UsageText:            buildinfo.Name + " [options] [PATH]",
		ArgsUsage:            "[PATH]",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Action:               action,
		// main owns printing and the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// globalFlags returns the CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    flagPort,
			Aliases: []string{"p"},
			Usage:   "Port to listen on",
			Value:   config.DefaultPort,
		},
		&cli.IntFlag{
			Name:    flagThreads,
			Aliases: []string{"t"},
			Usage:   "Number of worker threads",
			Value:   config.DefaultThreads,
		},
		&cli.BoolFlag{
			Name:    flagDaemon,
			Aliases: []string{"d"},
			Usage:   "Run in the background",
		},
		&cli.BoolFlag{
			Name:  flagIPv6,
			Usage: "Listen on the IPv6 loopback [::1] instead of 0.0.0.0",
		},
		&cli.BoolFlag{
			Name:  flagChroot,
			Usage: "Chroot into PATH before serving (requires privileges)",
		},
		&cli.StringFlag{
			Name:  flagIndex,
			Usage: "File served in place of a directory listing",
			Value: config.DefaultIndex,
		},
		&cli.StringFlag{
			Name:  flagDecode,
			Usage: "Request path decoding: narrow (only %20) or full",
			Value: config.DefaultDecode,
		},
		&cli.StringFlag{
			Name:  flagMetricsAddr,
			Usage: "Serve Prometheus metrics on this address (host:port)",
		},
		&cli.Float64Flag{
			Name:  flagRateLimit,
			Usage: "Global request rate limit in requests/second (0 = off)",
		},
		&cli.IntFlag{
			Name:  flagMaxConns,
			Usage: "Maximum simultaneously open connections (0 = unlimited)",
		},
		&cli.DurationFlag{
			Name:  flagTimeout,
			Usage: "Per-connection read/write timeout (0 = none)",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "Log level: debug, info, warn, error",
			Value: config.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "Log format: text, json",
			Value: config.DefaultLogFormat,
		},
		&cli.BoolFlag{
			Name:    flagQuiet,
			Aliases: []string{"q"},
			Usage:   "Do not print the per-request access line",
		},
		&cli.StringFlag{
			Name:  flagCompletions,
			Usage: "Print a completion script for `SHELL` (bash, zsh, fish) and exit",
		},
	}
}

// action selects completion mode or serving.
func action(c *cli.Context) error {
	if c.IsSet(flagCompletions) {
		return printCompletions(c.App, c.App.Writer, c.String(flagCompletions))
	}
	return serve(c)
}
