package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context cancelled by the first SIGINT or
// SIGTERM, plus a stop function that releases the signal registration.
// After stop (or after the first signal) a subsequent signal falls through
// to the default behavior, so a wedged shutdown can still be killed.
func SetupSignalHandler() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
