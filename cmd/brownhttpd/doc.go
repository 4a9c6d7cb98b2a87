// Package main provides the entry point for brownhttpd.
//
// brownhttpd serves a directory over HTTP: files are returned as is,
// directories answer with their index file or a generated listing, and
// anything else is a 404 page.
//
// Usage:
//
//	brownhttpd [options] [PATH]
//	brownhttpd -p 8080 -t 4 /srv/www
//	brownhttpd --completions bash > /etc/bash_completion.d/brownhttpd
//
// Configuration comes from flags and BROWNHTTPD_<SECTION>_<KEY>
// environment variables (for example BROWNHTTPD_SERVER_PORT=8080).
// Flags win over the environment.
package main
