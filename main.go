// kexhold - holds open as many pre-auth SSH sessions as a target will permit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kexhold/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kexhold: %v\n", err)
		os.Exit(1)
	}
}
