package main

import (
	"io"
	"log"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/felixge/httpsnoop"
)

// setNoCacheHeaders adds the headers that stop browsers and proxies from
// caching or reusing a response.
func setNoCacheHeaders(h http.Header) {
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// noCacheMiddleware injects the no-cache headers right before the response
// header is written, whatever status the wrapped handler picked. Setting
// them up front is not enough: http.FileServer drops Cache-Control on its
// error replies.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wroteHeader := false
		finalize := func() {
			if wroteHeader {
				return
			}
			wroteHeader = true
			setNoCacheHeaders(w.Header())
		}

		ww := httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					// 1xx replies are followed by the real header.
					if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
						setNoCacheHeaders(w.Header())
						next(code)
						return
					}
					finalize()
					next(code)
				}
			},
			Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
				return func(b []byte) (int, error) {
					finalize()
					return next(b)
				}
			},
			ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
				return func(src io.Reader) (int64, error) {
					finalize()
					return next(src)
				}
			},
		})
		next.ServeHTTP(ww, r)
	})
}

// loggingMiddleware writes one access log line per request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Printf("%q %d %s %s from %s",
			r.Method+" "+r.URL.RequestURI(),
			m.Code,
			humanize.Bytes(uint64(m.Written)),
			m.Duration,
			r.RemoteAddr,
		)
	})
}
