// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/mstbench/cmd/mstbench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
