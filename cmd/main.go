// Package main provides the API to manage users, shared transactions and balances.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-split/split-ledger/cmd/httpserver"
	"github.com/go-split/split-ledger/internal/middleware"
	"github.com/go-split/split-ledger/pkg/configpkg"
	"github.com/go-split/split-ledger/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if err := dbpkg.MigrateUp(db, config.MigrationSource); err != nil {
		logger.Fatal().Err(err).Msg("cannot run migrations")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("SPLIT LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
