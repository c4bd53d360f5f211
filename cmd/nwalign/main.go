package main

import (
	"os"

	"nwalign/cmd/nwalign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
