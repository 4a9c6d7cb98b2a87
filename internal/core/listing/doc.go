// Package listing renders HTML directory listings.
//
// A page shows the request path as title and heading, a link to the parent
// path, one table row per entry, and a UTC generation timestamp. Names and
// paths are HTML-escaped; hrefs are produced by the caller's encoder so they
// map back to the listed entry.
package listing
