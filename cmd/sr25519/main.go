package main

import (
	"os"

	"github.com/dotsig/sr25519/cmd/sr25519/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
