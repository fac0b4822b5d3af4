// SPDX-License-Identifier: MIT

package check

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/generator"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/logger"
	"github.com/katalvlaran/mstbench/mst"
)

var (
	Cmd = &cobra.Command{
		Use:   "check",
		Short: "build the MST of one generated graph with every method and compare the results",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			g, err := generator.Generate(Config.Check.Vertices, Config.Check.Mode, generator.WithSeed(Config.Check.Seed))
			if err != nil {
				log.Fatal().Err(err).Msg("")
			}
			log.Debug().
				Int("vertices", g.VertexCount()).
				Int("edges", g.EdgeCount()).
				Msg("graph generated")

			runner, err := bench.NewRunner(log.Logger, Config.Check.Methods...)
			if err != nil {
				log.Fatal().Err(err).Msg("")
			}

			results, cmpErr := runner.Compare(g)
			report := &bench.CheckReport{
				Mode:     Config.Check.Mode.String(),
				Seed:     Config.Check.Seed,
				Vertices: g.VertexCount(),
				Edges:    g.EdgeCount(),
				Results:  results,
			}
			if err := bench.RenderCheck(os.Stdout, report, Config.Check.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if cmpErr != nil {
				log.Fatal().Err(cmpErr).Msg("")
			}
		},
	}
	Config = config.NewConfig()
)

func init() {
	verticesFlagName := "vertices"
	Cmd.Flags().Int(
		verticesFlagName, 1000, "vertices count of the generated graph",
	)
	flag := Cmd.Flags().Lookup(verticesFlagName)
	if err := viper.BindPFlag("check.vertices", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	modeFlagName := "mode"
	Cmd.Flags().String(
		modeFlagName, generator.ModeSparse.String(),
		fmt.Sprintf("generator mode. possible values [%s|%s]", generator.ModeSparse, generator.ModeDense),
	)
	flag = Cmd.Flags().Lookup(modeFlagName)
	if err := viper.BindPFlag("check.mode", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	seedFlagName := "seed"
	Cmd.Flags().Int64(
		seedFlagName, generator.DefaultSeed, "generator seed, 0 uses the default seed",
	)
	flag = Cmd.Flags().Lookup(seedFlagName)
	if err := viper.BindPFlag("check.seed", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	methodFlagName := "method"
	Cmd.Flags().StringSlice(
		methodFlagName, nil, fmt.Sprintf("methods to compare, all by default %v", mst.Methods()),
	)
	flag = Cmd.Flags().Lookup(methodFlagName)
	if err := viper.BindPFlag("check.methods", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	formatFlagName := "format"
	Cmd.Flags().String(
		formatFlagName, bench.FormatTable,
		fmt.Sprintf("report format. possible values [%s|%s|%s]", bench.FormatTable, bench.FormatJson, bench.FormatYaml),
	)
	flag = Cmd.Flags().Lookup(formatFlagName)
	if err := viper.BindPFlag("check.format", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
