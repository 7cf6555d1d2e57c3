package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gatepost/gatepost/cmd/gatepost/serve"
	"github.com/gatepost/gatepost/cmd/gatepost/users"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gatepost",
		Usage: "A small invitation-only blog",
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
