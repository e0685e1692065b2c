package main

import (
	"os"

	"adsync/cmd/adsctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
