package main

import (
	"os"

	"github.com/lyrix-tools/lyrix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
