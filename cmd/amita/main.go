// SPDX-License-Identifier: MIT

// Command amita fits OLS and logit models on CSV data.
package main

import (
	"os"

	"github.com/katalvlaran/amita/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
