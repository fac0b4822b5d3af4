// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "run",
		Short: "run the benchmark suites and print the timings",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if Config.Run.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, Config.Run.Timeout)
				defer cancel()
			}

			runner, err := bench.NewRunner(log.Logger)
			if err != nil {
				log.Fatal().Err(err).Msg("")
			}

			var reports []*bench.SuiteReport
			for _, s := range Config.SelectedSuites() {
				report, err := runner.Run(ctx, s)
				if report != nil && len(report.Points) > 0 {
					reports = append(reports, report)
				}
				if err != nil {
					if renderErr := bench.Render(os.Stdout, reports, Config.Run.Format); renderErr != nil {
						log.Err(renderErr).Msg("")
					}
					log.Fatal().Err(err).Msg("")
				}
			}

			if err := bench.Render(os.Stdout, reports, Config.Run.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = config.NewConfig()
)

func init() {
	suiteFlagName := "suite"
	Cmd.Flags().StringSlice(
		suiteFlagName, nil, "run only the named suites",
	)
	flag := Cmd.Flags().Lookup(suiteFlagName)
	if err := viper.BindPFlag("run.suites", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	formatFlagName := "format"
	Cmd.Flags().String(
		formatFlagName, bench.FormatTable, "report format. possible values ["+strings.Join(bench.Formats(), "|")+"]",
	)
	flag = Cmd.Flags().Lookup(formatFlagName)
	if err := viper.BindPFlag("run.format", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	timeoutFlagName := "timeout"
	Cmd.Flags().Duration(
		timeoutFlagName, 0, "stop the run after this duration, 0 disables the limit",
	)
	flag = Cmd.Flags().Lookup(timeoutFlagName)
	if err := viper.BindPFlag("run.timeout", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
