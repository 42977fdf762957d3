// Command algopascal is the CLI for the numeral-base and Algo/Pascal
// code-generation toolkit.
package main

import (
	"os"

	"github.com/dzformation/algopascal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
