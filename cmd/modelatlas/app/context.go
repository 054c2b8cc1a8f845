package app

import (
	"context"
	"os/signal"
	"syscall"
)

// Context returns the root context for a CLI invocation. It is cancelled
// on SIGINT or SIGTERM so long-running commands, the serve command in
// particular, can drain before exiting. The CancelFunc releases the
// signal handlers and must be called when the command returns.
func Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
