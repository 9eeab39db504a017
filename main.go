// confman is a CLI for managing JSON and YAML configuration files.
package main

import (
	"fmt"
	"os"

	"confman/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
