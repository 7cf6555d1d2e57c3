package cmdflags

import (
	"time"

	"github.com/gatepost/gatepost/web"
	"github.com/urfave/cli/v2"
)

func Journal(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "journal",
		Aliases:     []string{"j"},
		Usage:       "Path to the directory holding the journal database",
		Destination: out,
		Value:       *out,
	}
}

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Usage:       "Address to bind and expose the blog",
		Destination: out,
		Value:       *out,
	}
}

func SessionTTL(out *time.Duration) cli.Flag {
	return &cli.DurationFlag{
		Name:        "session-ttl",
		Usage:       "How long a session stays valid without an explicit logout",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = web.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that holds the cookie signing secret. The secret itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
