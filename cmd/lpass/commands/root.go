package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lpass/internal/app"
)

var (
	server  string
	timeout time.Duration
	verbose bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "lpass",
		Short:         "Command-line client for the LastPass credential vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()

			if server == "" {
				server = os.Getenv("LPASS_SERVER")
			}
			appCtx = app.NewWire(app.Config{Server: server, Timeout: timeout})
		},
	}

	root.PersistentFlags().StringVar(&server, "server", "", "vault server host (default lastpass.com, env LPASS_SERVER)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default 30s)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(loginCmd(), versionCmd())
	return root.Execute()
}
