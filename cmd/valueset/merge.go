// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	valueset "github.com/digitalocean/go-valueset"
	"github.com/digitalocean/go-valueset/binmerge"
)

// mergeConfig is the layout of the file read by "valueset merge":
//
//	min_weight: 0.05
//	strategy: greedy
//	concurrency: 4
//	features:
//	  age:
//	    - {bin: "(0,18]", weight: 0.02}
//	    - {bin: "(18,65]", weight: 0.9}
type mergeConfig struct {
	MinWeight   float64                `koanf:"min_weight"`
	Strategy    string                 `koanf:"strategy"`
	Concurrency int                    `koanf:"concurrency"`
	Features    map[string][]binConfig `koanf:"features"`
}

type binConfig struct {
	Bin    string  `koanf:"bin"`
	Weight float64 `koanf:"weight"`
}

func newMergeCommand(g *globalFlags) *cobra.Command {
	var (
		path string
		cfg  mergeConfig
	)
	cmd := &cobra.Command{
		Use:   "merge --config <file>",
		Short: "Merges light bins of every feature in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadMergeConfig(path)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("min-weight") {
				fileCfg.MinWeight = cfg.MinWeight
			}
			if flags.Changed("strategy") {
				fileCfg.Strategy = cfg.Strategy
			}
			if flags.Changed("concurrency") {
				fileCfg.Concurrency = cfg.Concurrency
			}
			return runMerge(cmd, g, fileCfg)
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "YAML file with the bins to merge")
	cmd.Flags().Float64Var(&cfg.MinWeight, "min-weight", 0, "bins lighter than this are merged (overrides min_weight)")
	cmd.Flags().StringVar(&cfg.Strategy, "strategy", "sequential", "merge strategy, sequential or greedy (overrides strategy)")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", 0, "features merged at once, 0 for one per CPU (overrides concurrency)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func loadMergeConfig(path string) (mergeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mergeConfig{}, fmt.Errorf("read merge config: %w", err)
	}
	return parseMergeConfig(data)
}

func parseMergeConfig(data []byte) (mergeConfig, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kyaml.Parser()); err != nil {
		return mergeConfig{}, fmt.Errorf("load merge config: %w", err)
	}
	var cfg mergeConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return mergeConfig{}, fmt.Errorf("decode merge config: %w", err)
	}
	return cfg, nil
}

func runMerge(cmd *cobra.Command, g *globalFlags, cfg mergeConfig) error {
	strategy, err := binmerge.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	features := make(map[string][]binmerge.Bin, len(cfg.Features))
	for name, bins := range cfg.Features {
		parsed := make([]binmerge.Bin, len(bins))
		for i, b := range bins {
			tok, err := valueset.ParseElement(b.Bin)
			if err != nil {
				return fmt.Errorf("feature %q bin %d: %w", name, i, err)
			}
			parsed[i] = binmerge.Bin{Token: tok, Weight: b.Weight}
		}
		features[name] = parsed
	}

	m := &binmerge.Merger{
		MinWeight:   cfg.MinWeight,
		Strategy:    strategy,
		Logger:      g.logger,
		Concurrency: cfg.Concurrency,
	}
	merged, err := m.MergeAll(cmd.Context(), features)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		parts := make([]string, len(merged[name]))
		for i, b := range merged[name] {
			parts[i] = b.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(parts, " "))
	}
	return nil
}
