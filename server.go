package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// newHandler returns the file server for root with the no-cache headers and,
// unless quiet, the access log in front of it.
func newHandler(root string, quiet bool) http.Handler {
	h := noCacheMiddleware(newFileServer(root))
	if quiet {
		return h
	}
	return loggingMiddleware(h)
}

// listen binds the configured address. It is called exactly once; a failure
// (port in use, no permission) is returned to the caller, never retried.
func listen(cfg Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", cfg.Addr(), err)
	}
	return ln, nil
}

// Run resolves the display address, binds the listener and serves cfg.Root
// until the listener fails.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", cfg.Root, err)
	}
	cfg.Root = root

	ip := localIP()
	ln, err := listen(cfg)
	if err != nil {
		return err
	}
	return serve(ln, cfg, ip, os.Stdout)
}

// statusLine is the one line printed at startup telling users on the same
// network where to connect.
func statusLine(ip string, port int) string {
	return "Server running at http://" + net.JoinHostPort(ip, strconv.Itoa(port))
}

func serve(ln net.Listener, cfg Config, ip string, out io.Writer) error {
	port := cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	fmt.Fprintln(out, statusLine(ip, port))
	log.Printf("Serving files from: %s", cfg.Root)
	log.Println("Press Ctrl+C to stop")

	return http.Serve(ln, newHandler(cfg.Root, cfg.Quiet))
}
