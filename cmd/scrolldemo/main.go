package main

import (
	"os"

	"github.com/agiangrant/infinitescroll/cmd/scrolldemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
