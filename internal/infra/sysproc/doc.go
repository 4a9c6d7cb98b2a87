// Package sysproc performs the process-level steps of server bootstrap:
// detaching into the background, changing into the served root, and
// confining the process to it with chroot.
//
// Order matters. Daemonize runs first so the detached child is the one
// that binds the listener; Chdir precedes Chroot; both finish before any
// request is accepted.
package sysproc
