package service

import (
	"net/url"
	"strings"
)

// PathCodec converts between raw request paths and filesystem paths.
type PathCodec interface {
	// Decode turns a raw request path into a filesystem lookup path.
	Decode(raw string) string
	// Encode turns a filesystem path into an href that Decode maps back.
	Encode(p string) string
}

// NarrowCodec decodes only "%20". Every other escape sequence is passed
// through unchanged, so "/a%41" looks up a file literally named "a%41".
type NarrowCodec struct{}

// Decode replaces each "%20" with a space.
func (NarrowCodec) Decode(raw string) string {
	return strings.ReplaceAll(raw, "%20", " ")
}

// Encode replaces each space with "%20".
func (NarrowCodec) Encode(p string) string {
	return strings.ReplaceAll(p, " ", "%20")
}

// FullCodec applies standard percent-decoding to the whole path.
// Malformed escapes leave the path untouched.
type FullCodec struct{}

// Decode percent-decodes raw.
func (FullCodec) Decode(raw string) string {
	p, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return p
}

// Encode percent-encodes p as a URL path.
func (FullCodec) Encode(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}

// CodecFor returns the codec for a decode mode name ("narrow" or "full").
// Unknown names select NarrowCodec.
func CodecFor(mode string) PathCodec {
	if mode == "full" {
		return FullCodec{}
	}
	return NarrowCodec{}
}
