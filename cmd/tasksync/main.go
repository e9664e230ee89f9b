package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/tasksync/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Ctrl+C останавливает run и прерывает текущие запросы
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})
	stop()
	os.Exit(code)
}
