// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Command steamlens runs the Steamlens queries once from the command line
// against the configured snapshots and prints the JSON result.
//
//	steamlens developer Valve
//	steamlens recommend 70 --k 10 --exclude-self
//	steamlens --config /etc/steamlens/config.yaml best-year 2015
package main

import (
	"os"

	"github.com/tomtom215/steamlens/internal/dataset"
)

func main() {
	if err := newRootCmd(dataset.Load).Execute(); err != nil {
		os.Exit(1)
	}
}
