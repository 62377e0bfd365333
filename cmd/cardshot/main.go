// Command cardshot renders card descriptions to PNG images.
package main

import (
	"os"

	"github.com/go-drift/cardview/cmd/cardshot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
