package main

import (
	"os"

	"lpass/cmd/lpass/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
