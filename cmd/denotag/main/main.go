package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/denotag/cmd/denotag"
	"github.com/arthur-debert/denotag/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := denotag.NewRootCmd()
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, style.FormatError(err))

		// Usage of the command that failed, on stderr
		fmt.Fprintln(os.Stderr)
		_ = cmd.Usage()

		stop()
		os.Exit(1)
	}
}
