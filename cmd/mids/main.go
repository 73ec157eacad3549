// Package main provides the CLI entrypoint for mids.
//
// mids checks biodiversity records against the Minimum Information about a
// Digital Specimen levels:
//   - report-* prints every level with the elements that failed
//   - check-* prints only the highest level the record reaches
//   - elements lists the compiled mapping
//
// Records come from a JSON file, any http(s) URL or a GBIF occurrence id.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
