package main

import (
	"log"
)

// main only wires the command line; serving lives in Run in server.go.
func main() {
	cmd, err := newRootCmd()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
