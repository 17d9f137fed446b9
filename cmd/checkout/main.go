package main

import (
	"os"

	"github.com/whiteboardproductions/site/go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
