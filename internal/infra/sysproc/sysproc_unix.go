//go:build unix

package sysproc

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// EnvDaemonChild marks the re-executed background process.
const EnvDaemonChild = "BROWNHTTPD_DAEMON_CHILD"

// daemonUmask matches the conventional daemon file creation mask.
const daemonUmask = 0o027

// IsDaemonChild reports whether this process is the detached child.
func IsDaemonChild() bool {
	return os.Getenv(EnvDaemonChild) == "1"
}

// Daemonize detaches the server into the background.
//
// Go cannot fork safely, so the current binary is re-executed with the same
// arguments in a new session, with stdio on /dev/null. In the original
// process Daemonize returns parent=true and the caller should exit 0. In
// the child it sets the umask and returns parent=false.
func Daemonize() (parent bool, err error) {
	if IsDaemonChild() {
		unix.Umask(daemonUmask)
		return false, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return false, domain.ErrDaemonize.Wrap(err)
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return false, domain.ErrDaemonize.Wrap(err)
	}
	defer devNull.Close()

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Env = append(os.Environ(), EnvDaemonChild+"=1")
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return false, domain.ErrDaemonize.WithDetails(exe).Wrap(err)
	}
	if err := cmd.Process.Release(); err != nil {
		return false, domain.ErrDaemonize.Wrap(err)
	}

	return true, nil
}

// Chroot confines the process to root and moves to the new "/".
// It requires CAP_SYS_CHROOT; failure must abort startup.
func Chroot(root string) error {
	if err := unix.Chroot(root); err != nil {
		return domain.ErrChroot.WithDetails(fmt.Sprintf("chroot to '%s': %v", root, err)).Wrap(err)
	}
	if err := unix.Chdir("/"); err != nil {
		return domain.ErrChroot.WithDetails("chdir to new root").Wrap(err)
	}
	return nil
}
