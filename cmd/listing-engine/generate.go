// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/pipeline"
	"github.com/pdiddy/listing-engine/internal/render"
	"github.com/pdiddy/listing-engine/internal/runlog"
	"github.com/pdiddy/listing-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate gated marketing copy for one listing record",
	Long: `Generate reads a property-listing record (JSON), runs the quality-gated
generation loop, and writes the accepted HTML. The validation report is
printed to stderr; runs are recorded in the run log unless --no-log is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		noLog, _ := cmd.Flags().GetBool("no-log")

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input record: %w", err)
		}
		var rec types.InputRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("parsing input record: %w", err)
		}

		cfg := loadConfig()
		runner, err := buildRunner(cfg, os.Stderr)
		if err != nil {
			return err
		}

		res, err := runner.Run(cmd.Context(), rec)
		if err != nil {
			return err
		}

		if res.Copy != nil {
			html, err := render.HTML(res.Copy)
			if err != nil {
				return err
			}
			res.HTML = html
		}

		pipeline.WriteReport(os.Stderr, res, cfg.Runner.MaxRetries)

		if !noLog {
			store, err := runlog.Open(cfg.RunLog)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
			} else {
				defer store.Close()
				if id, err := store.Record(cmd.Context(), rec, res); err == nil {
					fmt.Fprintf(os.Stderr, "Run recorded: %s\n", id)
				}
			}
		}

		if res.Copy == nil {
			return fmt.Errorf("no document generated after %d attempts", res.Attempts)
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		outPath := filepath.Join(outputDir, time.Now().Format("20060102_150405")+"_output.html")
		if err := os.WriteFile(outPath, []byte(res.HTML), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Println(outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("input", "", "path to the listing record JSON (required)")
	generateCmd.Flags().String("output-dir", "results", "directory for accepted HTML output")
	generateCmd.Flags().Bool("no-log", false, "skip recording the run in the run log")
	generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd)
}
