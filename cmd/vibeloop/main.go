package main

import (
	"os"

	"github.com/vibeloop/vibeloop/cmd/vibeloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
