package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lpass/internal/app"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lpass-cli " + app.Version)
		},
	}
}
