package common

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalHandler returns a channel notified on SIGINT and SIGTERM.
func SignalHandler() chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}
