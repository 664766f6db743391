package main

import (
	"os"

	"github.com/mbourmaud/nob/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
