package main

import (
	"os"

	"dimcalc/cmd/dimcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
