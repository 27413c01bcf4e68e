// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for PASS // FAIL.
//
// Usage:
//
//	go run . [flags]
//	./passfail [flags]
//
// This launches the passfail CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/mmark5466-dev/pass-fail/ui/cli"
)

// main is the entrypoint for the passfail CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("passfail error: %v", err)
		os.Exit(1)
	}
}
