// Command aspen is the developer tool for Aspen UI projects.
package main

import (
	"os"

	"github.com/go-aspen/aspen/cmd/aspen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
