package main

import (
	"os"

	"github.com/keep3r-network/keep3r/cmd/keep3rd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
