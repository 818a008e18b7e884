// main is the entrypoint for the pairmetrics CLI.
package main

import (
	"github.com/apkasten906/ai-pairing-metrics/cmd"
	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseCaching()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
