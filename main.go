// main holds the entry logic for the dealflow CLI.
package main

import (
	"github.com/dealflowhq/dealflow/cmd"
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Close stores before exiting so SQLite flushes cleanly.
	iocache.CloseCaching()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
