package listing

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"path"
	"strings"
	"time"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// TimeFormat is the footer timestamp layout (asctime style).
const TimeFormat = time.ANSIC

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<tt><pre>
<table>
<tr><td><a {{.Parent}}>..</a></td></tr>
{{range .Rows}}{{if .Dir}}<tr><td><a {{.Href}}>{{.Name}}/</a></td><td></td></tr>
{{else}}<tr><td><a {{.Href}}>{{.Name}}</a></td><td align="right">   {{.Size}}</td></tr>
{{end}}{{end}}</table>
</pre></tt>
<hr>
Generated on {{.Generated}} UTC
</body>
</html>`

var page = template.Must(template.New("listing").Parse(pageTemplate))

type row struct {
	Name string
	Href template.HTMLAttr
	Dir  bool
	Size int64
}

type pageData struct {
	Title     string
	Parent    template.HTMLAttr
	Rows      []row
	Generated string
}

// Renderer builds listing pages. It is safe for concurrent use.
type Renderer struct {
	now  func() time.Time
	href func(string) string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the time source for the footer timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithHref sets the function that turns an entry's filesystem path into
// an href. The default escapes nothing.
func WithHref(fn func(string) string) Option {
	return func(r *Renderer) {
		r.href = fn
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		now:  time.Now,
		href: func(p string) string { return p },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render materializes the listing page for dir.
//
// requestPath is shown verbatim as the title and is the base for the parent
// link. dir is the decoded directory path inside the served root; entry
// hrefs are built from it. Entries are rendered in the order given.
func (r *Renderer) Render(requestPath, dir string, entries []domain.DirEntry) (string, error) {
	data := pageData{
		Title:     requestPath,
		Parent:    hrefAttr(Parent(requestPath)),
		Rows:      make([]row, 0, len(entries)),
		Generated: r.now().UTC().Format(TimeFormat),
	}

	for _, e := range entries {
		data.Rows = append(data.Rows, row{
			Name: e.Name,
			Href: hrefAttr(r.href(path.Join("/", dir, e.Name))),
			Dir:  e.Dir,
			Size: e.Size,
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render listing %s: %w", requestPath, err)
	}
	return buf.String(), nil
}

// hrefAttr renders an href attribute holding target byte for byte, only
// HTML-escaped. The path codec owns URL escaping.
func hrefAttr(target string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + html.EscapeString(target) + `"`)
}

// Parent returns the link target one level above requestPath.
// A path with no parent ("/" or "") links to "..".
func Parent(requestPath string) string {
	p := strings.TrimRight(requestPath, "/")
	if p == "" {
		return ".."
	}
	return path.Dir(p)
}
