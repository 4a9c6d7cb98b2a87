// Package command provides the brownhttpd command line.
//
// It uses urfave/cli/v2 for flag parsing:
//
//   - root.go: the application, its flags, and mode selection
//   - flags.go: mapping explicitly set flags onto configuration keys
//   - serve.go: startup sequence and the serving loop
//   - completion.go: shell completion scripts
package command
