// Command lvlsort runs the lvlsort algorithms from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/lvlsort/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
