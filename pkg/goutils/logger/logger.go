/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

var ErrUnknownLogLevel = errors.New("unknown log level")

var levelNames = map[TLogLevel]string{
	LogLevelNone:    "none",
	LogLevelError:   "error",
	LogLevelWarning: "warning",
	LogLevelInfo:    "info",
	LogLevelVerbose: "verbose",
	LogLevelTrace:   "trace",
}

func (l TLogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("TLogLevel(%d)", int32(l))
}

// ParseLogLevel is case insensitive, "debug" is an alias of "verbose"
func ParseLogLevel(name string) (TLogLevel, error) {
	name = strings.ToLower(name)
	if name == "debug" {
		return LogLevelVerbose, nil
	}
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return LogLevelNone, fmt.Errorf("%w: %s", ErrUnknownLogLevel, name)
}

// SetLogLevel returns the previous level
func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32((*int32)(&globalLogPrinter.logLevel), int32(logLevel)))
}

// SetLogLevelWithRestore is for tests: defer logger.SetLogLevelWithRestore(logger.LogLevelVerbose)()
func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() {
		SetLogLevel(old)
		Info("LogLevel restored to", old)
	}
}

func Error(args ...interface{})   { printIfLevel(0, LogLevelError, args...) }
func Warning(args ...interface{}) { printIfLevel(0, LogLevelWarning, args...) }
func Info(args ...interface{})    { printIfLevel(0, LogLevelInfo, args...) }
func Verbose(args ...interface{}) { printIfLevel(0, LogLevelVerbose, args...) }
func Trace(args ...interface{})   { printIfLevel(0, LogLevelTrace, args...) }

// Log prints on behalf of the caller skipStackFrames levels up
func Log(skipStackFrames int, level TLogLevel, args ...interface{}) {
	printIfLevel(skipStackFrames, level, args...)
}

func IsError() bool   { return isEnabled(LogLevelError) }
func IsWarning() bool { return isEnabled(LogLevelWarning) }
func IsInfo() bool    { return isEnabled(LogLevelInfo) }
func IsVerbose() bool { return isEnabled(LogLevelVerbose) }
func IsTrace() bool   { return isEnabled(LogLevelTrace) }

// PrintLine writes a formatted line, replaced in tests to capture the output
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

// DefaultPrintLine writes errors to stderr, everything else to stdout
func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}
