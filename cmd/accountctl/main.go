package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/accountctl/internal/cmd"
	"github.com/felixgeelhaar/accountctl/internal/exitcode"
	"github.com/felixgeelhaar/accountctl/internal/tui"
	"github.com/felixgeelhaar/accountctl/internal/ux"
)

func main() {
	os.Exit(int(run()))
}

func run() exitcode.Code {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitcode.Success
	case ctx.Err() != nil, errors.Is(err, tui.ErrAborted):
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		return exitcode.Interrupted
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", ux.EnhanceError(err))
	return exitcode.For(err)
}
