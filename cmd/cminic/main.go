// Command cminic is the driver for the cminic front end: it reads a source
// file, lexes or parses it, and prints tokens or the AST dump.
package main

import (
	"fmt"
	"os"

	"github.com/cminic/cminic/cmd/cminic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
