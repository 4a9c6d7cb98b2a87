package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// AccessLog writes one operational line per response:
//
//	GET '/a.txt' => 200
//
// Writes are serialized so concurrent workers never interleave lines.
type AccessLog struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool

	ok     *color.Color
	client *color.Color
	server *color.Color
}

// NewAccessLog creates an access log writing to out. Status codes are
// colored only when out is the process stdout and it is a terminal.
// A disabled AccessLog drops every line.
func NewAccessLog(out io.Writer, enabled bool) *AccessLog {
	a := &AccessLog{
		out:     out,
		enabled: enabled,
		ok:      color.New(color.FgGreen),
		client:  color.New(color.FgYellow),
		server:  color.New(color.FgRed, color.Bold),
	}
	if out != os.Stdout || color.NoColor {
		a.ok.DisableColor()
		a.client.DisableColor()
		a.server.DisableColor()
	}
	return a
}

// Log records a completed request. method is upper-cased; url is printed
// as given.
func (a *AccessLog) Log(method, url string, status int) {
	if a == nil || !a.enabled {
		return
	}

	line := fmt.Sprintf("%s '%s' => %s\n", strings.ToUpper(method), url, a.status(status))

	a.mu.Lock()
	defer a.mu.Unlock()
	io.WriteString(a.out, line)
}

func (a *AccessLog) status(code int) string {
	switch {
	case code >= 500:
		return a.server.Sprint(code)
	case code >= 400:
		return a.client.Sprint(code)
	default:
		return a.ok.Sprint(code)
	}
}
