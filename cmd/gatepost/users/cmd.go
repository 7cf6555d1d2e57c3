package users

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/gatepost/gatepost/auth"
	"github.com/gatepost/gatepost/internal/cmdflags"
	"github.com/gatepost/gatepost/internal/logutil"
	"github.com/gatepost/gatepost/journal"
	"github.com/urfave/cli/v2"
)

// Cmd manages user records directly against the journal. The HTTP
// registration route is gated to logged-in users, so the very first
// account has to come from here.
func Cmd() *cli.Command {
	var store *journal.J
	var journalPath string
	return &cli.Command{
		Name:  "users",
		Usage: "Manage user records in the given journal",
		Flags: []cli.Flag{
			cmdflags.Journal(&journalPath),
		},
		Before: func(ctx *cli.Context) error {
			var err error
			store, err = journal.LoadJournal(ctx.Context, journalPath, true)
			return err
		},
		After: func(ctx *cli.Context) error {
			if store != nil {
				return store.Close()
			}
			return nil
		},
		Subcommands: []*cli.Command{
			registerCmd(&store),
		},
	}
}

func registerCmd(store **journal.J) *cli.Command {
	var username string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user in the given journal (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u", "user"},
				Usage:       "Name of the user to register",
				Destination: &username,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			id, err := (*store).CreateUser(ctx.Context, username, hash)
			if err != nil {
				return err
			}
			log := logutil.GetOrDefault(ctx.Context)
			log.Info().Int64("user.id", id).Str("user.name", username).Msg("User registered")
			return nil
		},
	}
}
