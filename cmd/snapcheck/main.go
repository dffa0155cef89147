// Package main is the entry point for the snapcheck application
package main

import (
	"github.com/ethpandaops/snapcheck/cmd"
)

func main() {
	cmd.Execute()
}
