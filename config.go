package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 8000
	defaultRoot = "."
)

// Config holds the listening address and the directory being served.
type Config struct {
	Host string
	Port int
	Root string
	// Quiet disables the per-request access log.
	Quiet bool
}

// configFromEnv returns the default configuration with HOST, PORT and
// SERVE_ROOT applied when they are set.
func configFromEnv() (Config, error) {
	cfg := Config{Host: defaultHost, Port: defaultPort, Root: defaultRoot}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SERVE_ROOT"); v != "" {
		cfg.Root = v
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Root == "" {
		return errors.New("root directory is required")
	}
	fi, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("root directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("root %s is not a directory", c.Root)
	}
	return nil
}

// Addr is the host:port pair passed to net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
