// colourgen writes colours.gen.h and colours.gen.c from the built-in colour
// table. It is meant to run as a build step; any failure exits non-zero.
package main

import (
	"os"

	"github.com/jmylchreest/colourgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
