package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/brownhttpd/internal/infra/confloader"
	"github.com/yndnr/brownhttpd/internal/server/config"
)

// flagKeys maps flag names onto dotted configuration keys.
var flagKeys = map[string]string{
	flagPort:        "server.port",
	flagThreads:     "server.threads",
	flagIPv6:        "server.ipv6",
	flagIndex:       "server.index",
	flagDecode:      "server.decode",
	flagDaemon:      "process.daemon",
	flagChroot:      "process.chroot",
	flagRateLimit:   "limits.rate",
	flagMaxConns:    "limits.conns",
	flagTimeout:     "limits.timeout",
	flagLogLevel:    "log.level",
	flagLogFormat:   "log.format",
	flagMetricsAddr: "metrics.addr",
}

// setFlags collects the flags the user actually passed, keyed by
// configuration path. Unset flags are left out so environment values are
// not masked by flag defaults.
func setFlags(c *cli.Context) map[string]any {
	out := make(map[string]any)
	for name, key := range flagKeys {
		if c.IsSet(name) {
			out[key] = c.Value(name)
		}
	}
	if c.IsSet(flagQuiet) {
		out["log.access"] = !c.Bool(flagQuiet)
	}
	if root := c.Args().First(); root != "" {
		out["server.root"] = root
	}
	return out
}

// loadConfig assembles, normalizes and verifies the configuration.
// Precedence: defaults < BROWNHTTPD_* environment < flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	loader := confloader.NewLoader(confloader.WithFlags(setFlags(c)))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Server.Root = wd
	}

	cfg = config.Sanitize(cfg)
	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
