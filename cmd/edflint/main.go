// Command edflint parses .env-style files and reports every entry, or
// every defect, found in them.
package main

import (
	"os"

	"github.com/ltick/edf/cmd/edflint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
