// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	InitializeColors()

	config, err := LoadConfig()
	logger := newLogger(config.Log)
	if err != nil {
		logger.WithError(err).Warn("using default configuration")
	}

	if err := newRootCmd(config, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(config *Config, logger *log.Logger) *cobra.Command {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███╗   ███╗ █████╗ ██████╗
██╔══██╗██║   ██║██║     ████╗ ████║██╔══██╗██╔══██╗
███████║██║   ██║██║     ██╔████╔██║███████║██████╔╝
██╔══██║╚██╗ ██╔╝██║     ██║╚██╔╝██║██╔══██║██╔═══╝
██║  ██║ ╚████╔╝ ███████╗██║ ╚═╝ ██║██║  ██║██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
Self-balancing ordered map with benchmarks, invariant checks and a tree explorer [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	benchCfg := config.Bench
	var noProgress, withChart, verify bool

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time the AVL tree against a B-tree and an LLRB tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench adds distinct random keys, removes a window of them, then looks every key up, timing each phase per structure`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := benchCfg
			cfg.ShowProgress = cfg.ShowProgress && !noProgress

			runner := &benchRunner{cfg: cfg, verify: verify, logger: logger, progressOut: os.Stderr}
			report, err := runner.run()
			if err != nil {
				logger.WithError(err).Error("benchmark failed")
				return err
			}

			renderReport(cmd.OutOrStdout(), report, true)
			if withChart {
				return showChart(report)
			}
			return nil
		},
	}
	cmdBench.Flags().IntVar(&benchCfg.Count, "count", config.Bench.Count, "number of distinct keys")
	cmdBench.Flags().IntVar(&benchCfg.RemoveFrom, "remove-from", config.Bench.RemoveFrom, "first index of the removed key window")
	cmdBench.Flags().IntVar(&benchCfg.RemoveTo, "remove-to", config.Bench.RemoveTo, "end index (exclusive) of the removed key window")
	cmdBench.Flags().Int64Var(&benchCfg.Seed, "seed", config.Bench.Seed, "random seed, 0 for time based")
	cmdBench.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bars")
	cmdBench.Flags().BoolVar(&withChart, "chart", false, "show a bar chart of the timings")
	cmdBench.Flags().BoolVar(&verify, "verify", false, "check every AVL invariant after each phase")

	stressCfg := stressConfig{Ops: 100000, Keyspace: 1000}

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Stress the tree with random operations and verify its invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check mirrors random adds and removes in a Go map and validates the whole tree after every operation`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runStress(stressCfg, logger)
			entry := logger.WithFields(log.Fields{seedKey: res.Seed, opsKey: res.Ops})
			if err != nil {
				entry.WithError(err).Error("invariant violated")
				return err
			}
			entry.Info("all invariants held")
			fmt.Fprintf(cmd.OutOrStdout(),
				"%s✅ %d operations (%d adds, %d removes, %d duplicate adds, %d absent removes), final count %d, height %d%s\n",
				Green, res.Ops, res.Adds, res.Removes, res.Duplicates, res.Misses, res.Final, res.Height, Reset)
			return nil
		},
	}
	cmdCheck.Flags().IntVar(&stressCfg.Ops, "ops", stressCfg.Ops, "number of random operations")
	cmdCheck.Flags().Int64Var(&stressCfg.Seed, "seed", 0, "random seed, 0 for time based")
	cmdCheck.Flags().IntVar(&stressCfg.Keyspace, "keyspace", stressCfg.Keyspace, "keys are drawn from [0, keyspace)")

	showValues := config.Shell.ShowValues

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Line based session over a string keyed tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads commands such as add, remove, find and print from standard input`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(showValues, NewOptimizedHelpCache())
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), s, config.Shell.Prompt)
		},
	}
	cmdShell.Flags().BoolVar(&showValues, "values", showValues, "include values when printing the tree")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Full screen tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore runs shell commands and redraws the tree after each one`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(newSession(showValues, NewOptimizedHelpCache()))
		},
	}
	cmdExplore.Flags().BoolVar(&showValues, "values", showValues, "include values when drawing the tree")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlmap configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlmap usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlmap CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlmap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlmap",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdBench, cmdCheck, cmdShell, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}
