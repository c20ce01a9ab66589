// fpat - friendly pattern tool
//
// Translates shorthand patterns to standard regular expressions and uses
// them to match, grep and rewrite text.
package main

import (
	"errors"
	"fmt"
	"os"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(os.Stderr, "fpat: %v\n", err)
		}
		os.Exit(1)
	}
}
