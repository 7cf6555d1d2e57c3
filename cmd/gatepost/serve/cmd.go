package serve

import (
	"time"

	"github.com/gatepost/gatepost/auth"
	"github.com/gatepost/gatepost/internal/cmdflags"
	"github.com/gatepost/gatepost/internal/httpserver"
	"github.com/gatepost/gatepost/journal"
	"github.com/gatepost/gatepost/web"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7080"
	var journalPath string
	var secretEnvVar string
	sessionTTL := 12 * time.Hour
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the blog server on top of the given journal",
		Flags: []cli.Flag{
			cmdflags.Journal(&journalPath),
			cmdflags.Bind(&bindAddr),
			cmdflags.SessionTTL(&sessionTTL),
			cmdflags.SecretEnvVar(&secretEnvVar),
		},
		Action: func(ctx *cli.Context) error {
			secret, err := web.SecretFromEnv(secretEnvVar, nil, nil)
			if err != nil {
				return err
			}
			store, err := journal.LoadJournal(ctx.Context, journalPath, true)
			if err != nil {
				return err
			}
			defer store.Close()
			sessions := auth.InMemorySessionStore(sessionTTL)
			handler, err := web.Handler(ctx.Context, store, sessions, secret)
			if err != nil {
				return err
			}
			return httpserver.Serve(ctx.Context, bindAddr, handler)
		},
	}
}
