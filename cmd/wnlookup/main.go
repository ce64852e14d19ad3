// Command wnlookup runs cached lookups against a WordNet database and prints
// the records as JSON.
//
//	wnlookup --config wordnet.yaml words "natural language processing"
//	wnlookup links 06142412-n --relation hype --stats
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
