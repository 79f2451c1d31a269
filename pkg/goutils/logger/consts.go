/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"log/slog"
	"os"
)

// attributes of the *Ctx functions
const (
	LogAttr_ServiceID = "sid"
	LogAttr_Entity    = "entity"
	LogAttr_Node      = "node"
)

const (
	logCtxSkipFrames = 3
	printSkipFrames  = 4
	slogLevelTrace   = slog.LevelDebug - 4
)

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."
)

var (
	// filtering is done by isEnabled, the handler prints everything it gets
	ctxHandlerOpts = &slog.HandlerOptions{
		Level: slogLevelTrace,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			switch a.Value.Any().(slog.Level) {
			case slog.LevelDebug:
				a.Value = slog.StringValue("VERBOSE")
			case slogLevelTrace:
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}
	slogOut = slog.New(slog.NewTextHandler(os.Stdout, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(os.Stderr, ctxHandlerOpts))
)
