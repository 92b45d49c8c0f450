package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"blooddonor/internal/adapter/repository"
	"blooddonor/internal/infrastructure/mongodb"
	"blooddonor/pkg/config"
	"blooddonor/pkg/logger"
)

var ensureIndexesCommand = &cli.Command{
	Name:   "ensure-indexes",
	Usage:  "Apply MongoDB collection validators and indexes, then exit",
	Action: ensureIndexes,
}

func ensureIndexes(cCtx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.Environment)

	if cfg.DatabaseDriver != config.DriverMongo {
		logger.Warn("ensure-indexes only applies to %s, DATABASE_DRIVER is %s", config.DriverMongo, cfg.DatabaseDriver)
		return nil
	}

	client, err := mongodb.Connect(cCtx.Context, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := repository.EnsureSchema(cCtx.Context, client.Database(cfg.MongoDatabase)); err != nil {
		return err
	}

	logger.Info("Schema applied to database %s", cfg.MongoDatabase)
	return nil
}
