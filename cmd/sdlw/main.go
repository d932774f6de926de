// Command sdlw hosts the toolkit's demo and tooling commands.
package main

import (
	"os"

	"github.com/TomekTTX/sdlw/cmd/sdlw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
