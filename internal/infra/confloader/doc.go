// Package confloader assembles configuration with Koanf.
//
// Sources are merged with priority Flag > Env > Default: the target struct
// arrives pre-filled with defaults, environment variables carrying the
// prefix override it, and explicitly set command-line flags override both.
// Configuration files are not supported.
package confloader
