// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/runlog"
	"github.com/pdiddy/listing-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the generation pipeline over HTTP",
	Long: `Serve starts the HTTP shell: POST /api/generate runs the pipeline for a
record, GET /api/runs lists recorded runs, GET /healthz reports liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		runner, err := buildRunner(cfg, os.Stderr)
		if err != nil {
			return err
		}

		store, err := runlog.Open(cfg.RunLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr
		}

		fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
		return server.New(runner, store).Routes().Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
