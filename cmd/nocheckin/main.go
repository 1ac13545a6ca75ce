package main

import (
	"os"

	"nocheckin/cmd/nocheckin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
