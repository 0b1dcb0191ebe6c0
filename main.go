package main

import (
	"os"

	"github.com/securecart-labs/securecart360/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
