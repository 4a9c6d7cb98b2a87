package handler

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

const contentTypeHTML = "text/html; charset=utf-8"

const notFoundTemplate = `<!DOCTYPE html>
<html>
<head>
<title>404 Not Found</title>
</head>
<body>
<h1>Not found - %s</h1>
</body>
</html>`

// serveFile streams a regular file (or a directory's index file) with
// status 200. Content-Type is left to net/http's sniffing.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, out domain.Outcome) (domain.OutcomeKind, error) {
	f, fi, err := h.router.Open(out.Path)
	if err != nil {
		h.requestLogger(r).Debug("open failed, answering 404", "target", out.Path, "error", err)
		return h.serveNotFound(w, r)
	}
	defer f.Close()

	w.Header().Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, f)
	h.metrics.AddBytes(n)
	return out.Kind, err
}

// serveListing renders dir and answers 200 with the page.
func (h *Handler) serveListing(w http.ResponseWriter, r *http.Request, requestPath, dir string) (domain.OutcomeKind, error) {
	entries, err := h.router.List(dir)
	if err != nil {
		h.requestLogger(r).Debug("list failed, answering 404", "dir", dir, "error", err)
		return h.serveNotFound(w, r)
	}

	page, err := h.renderer.Render(requestPath, dir, entries)
	if err != nil {
		h.requestLogger(r).Error("render listing", "dir", dir, "error", err)
		return h.serveNotFound(w, r)
	}

	return domain.OutcomeListing, h.writeHTML(w, http.StatusOK, page)
}

// serveNotFound answers 404 with the requested URL echoed in the page.
func (h *Handler) serveNotFound(w http.ResponseWriter, r *http.Request) (domain.OutcomeKind, error) {
	return domain.OutcomeNotFound, h.writeHTML(w, http.StatusNotFound, NotFoundPage(r.RequestURI))
}

func (h *Handler) writeHTML(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	n, err := io.WriteString(w, body)
	h.metrics.AddBytes(int64(n))
	return err
}

// NotFoundPage returns the 404 body for url. The URL is HTML-escaped.
func NotFoundPage(url string) string {
	return fmt.Sprintf(notFoundTemplate, html.EscapeString(url))
}
