package main

import (
	"os"

	"github.com/jmcnair/voterhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
