package main

import (
	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
)

// runFunc is swapped out in tests so the command can be exercised without
// binding a port.
var runFunc = Run

func newRootCmd() (*cobra.Command, error) {
	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:   "servehere",
		Short: "Serve a directory over HTTP with caching disabled",
		Long: `servehere serves the current directory (or --root) over plain HTTP on
every interface. Every response tells browsers and proxies not to cache it,
so edits show up on the next reload.`,
		Version:       versioninfo.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Host, "host", cfg.Host, "address to listen on (env HOST)")
	flags.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env PORT)")
	flags.StringVarP(&cfg.Root, "root", "d", cfg.Root, "directory to serve (env SERVE_ROOT)")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "don't log requests")
	return cmd, nil
}
