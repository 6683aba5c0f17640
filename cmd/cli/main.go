package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/caldunn/alderlake-e-cores/pkg/config"
	"github.com/caldunn/alderlake-e-cores/pkg/cpuid"
	"github.com/caldunn/alderlake-e-cores/pkg/detect"
	"github.com/caldunn/alderlake-e-cores/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var single bool
	var mode string
	var quiet bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "alderlake-e-cores",
		Short: "Detect the P/E core partition of a hybrid x86 CPU",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single-core report mode: this is what the re-invoked,
			// taskset-pinned children run. One label, nothing else on
			// stdout.
			if single {
				fmt.Fprintln(cmd.OutOrStdout(), cpuid.ClassifyCurrentCore())
				return nil
			}

			cfg := config.Load("")
			if mode != "" {
				cfg.ProbeMode = mode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger.Setup(cfg.LogLevel, cmd.ErrOrStderr())

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Probing core types (%s)...", cfg.ProbeMode)
				s.Start()
			}

			layout, err := runDetection(cmd, cfg)

			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(layout)
			}
			fmt.Fprintln(cmd.OutOrStdout(), layout.FormattedString())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&single, "single", "s", false, "Report the core type of the current core only")
	cmd.Flags().StringVar(&mode, "mode", "", "Probe mode: concurrent, sequential or native (default from ECD_PROBE_MODE)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the layout as JSON")
	cmd.SilenceUsage = true
	return cmd
}

func runDetection(cmd *cobra.Command, cfg *config.Config) (*detect.CorePELayout, error) {
	d, err := detect.New(cfg)
	if err != nil {
		return nil, err
	}
	return d.Partition(cmd.Context())
}
