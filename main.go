// main is the entry point for the pulseboard CLI.
package main

import (
	"os"

	"github.com/pulseboard/pulseboard/cmd"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/snapstore"
)

func main() {
	if err := cmd.Execute(); err != nil {
		snapstore.CloseSnapshots()
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
	snapstore.CloseSnapshots()
}
