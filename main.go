// ck is the CLI for confkit, a small configuration and state toolkit.
package main

import (
	"fmt"
	"os"

	"confkit/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
