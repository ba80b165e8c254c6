// Package main is the entry point for the pawmart CLI.
package main

import (
	"github.com/pawmart/pawmart/cmd/pawmart/cmd"
)

func main() {
	cmd.Execute()
}
