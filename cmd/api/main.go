package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"blooddonor/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "blooddonor",
		Usage: "GraphQL backend matching blood donors with requests",
		Commands: []*cli.Command{
			serveCommand,
			ensureIndexesCommand,
		},
		DefaultCommand: serveCommand.Name,
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("application failed")
	}
}
