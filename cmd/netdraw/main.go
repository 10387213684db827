package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/netdraw/internal/cli"
	"github.com/matzehuels/netdraw/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode reports err on stderr and maps it to a process exit status:
// 130 for interrupts, 2 for coded input errors and 1 otherwise.
func exitCode(err error) int {
	if stderrors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	switch errors.GetCode(err) {
	case "", errors.ErrCodeInternal, errors.ErrCodeUnsupported:
		return 1
	}
	return 2
}
