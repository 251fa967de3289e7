package main

import (
	"fmt"
	"os"

	"milkman/pkg/cli"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := cli.NewCLIApp(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
