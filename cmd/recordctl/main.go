// recordctl applies the pure collection utilities to YAML or JSON documents
// and demonstrates the debounced value cell on line input.
//
// Usage: recordctl [--input FILE] [--json] <command> [args]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
