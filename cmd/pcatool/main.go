// SPDX-License-Identifier: MIT

// Command pcatool fits PCA models on CSV data and applies them.
//
//	pcatool fit --data train.csv
//	pcatool transform --data train.csv --input x.csv --kind whitening
//	pcatool check --data train.csv --input points.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("pcatool failed")
		cancel()
		os.Exit(1)
	}
}
