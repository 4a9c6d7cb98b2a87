//go:build !unix

package sysproc

import (
	"errors"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// EnvDaemonChild marks the re-executed background process.
const EnvDaemonChild = "BROWNHTTPD_DAEMON_CHILD"

var errUnsupported = errors.New("not supported on this platform")

// IsDaemonChild always reports false on this platform.
func IsDaemonChild() bool {
	return false
}

// Daemonize is not supported on this platform.
func Daemonize() (bool, error) {
	return false, domain.ErrDaemonize.Wrap(errUnsupported)
}

// Chroot is not supported on this platform.
func Chroot(root string) error {
	return domain.ErrChroot.WithDetails(root).Wrap(errUnsupported)
}
