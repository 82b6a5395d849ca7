// Command worldsys classifies countries into world-systems tiers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/worldsys/worldsys/cmd"
	"github.com/worldsys/worldsys/internal/contract"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		stop()
		contract.LogFatal("worldsys failed", err)
	}
}
