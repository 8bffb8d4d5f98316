// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/pipeline"
	"github.com/pdiddy/listing-engine/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an existing document without generating",
	Long: `Score runs the quality gate over an existing listing-copy document
(JSON with the seven content fields) against an optional input record, and
prints the verdict. No generation calls are made; the fact check runs only
when enabled and an input record is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		copyPath, _ := cmd.Flags().GetString("copy")
		inputPath, _ := cmd.Flags().GetString("input")

		data, err := os.ReadFile(copyPath)
		if err != nil {
			return fmt.Errorf("reading copy: %w", err)
		}
		var doc types.ListingCopy
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing copy: %w", err)
		}

		var rec types.InputRecord
		if inputPath != "" {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading input record: %w", err)
			}
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("parsing input record: %w", err)
			}
		}

		cfg := loadConfig()
		gate, err := buildGate(cfg)
		if err != nil {
			return err
		}

		verdict := gate.Evaluate(cmd.Context(), &doc, rec, "")
		pipeline.WriteReport(os.Stdout, &types.Result{Copy: &doc, Verdict: verdict}, cfg.Runner.MaxRetries)

		if !verdict.Passed {
			return fmt.Errorf("document failed the quality gate (score %.2f, %d issues)",
				verdict.Score, len(verdict.Issues))
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("copy", "", "path to the listing-copy JSON (required)")
	scoreCmd.Flags().String("input", "", "path to the listing record JSON")
	scoreCmd.MarkFlagRequired("copy")

	rootCmd.AddCommand(scoreCmd)
}
