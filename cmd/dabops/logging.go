package main

import (
	"context"
	"time"

	"github.com/hoshisato/dabops/internal/logging"
)

// withCmdRunLogger attaches the operation name to the context logger, emits
// a start log line, and returns a cleanup function that records success or
// failure with elapsed seconds.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(cmd.Context(), "paths")
//	defer func() { cleanup(err) }()
//
// The runId is inherited from the context logger (set in PersistentPreRunE).
func withCmdRunLogger(ctx context.Context, operation string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("operation", operation)
	ctx = logging.WithLogger(ctx, logger)

	logger.Debug(ctx, "command start")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err != nil {
			logger.Debug(ctx, "command end", "error", err.Error(), "elapsed", elapsed)
			return
		}
		logger.Debug(ctx, "command end", "elapsed", elapsed)
	}
	return ctx, cleanup
}
