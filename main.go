package main

import (
	"os"

	"github.com/beemnet-bee/Elementia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
