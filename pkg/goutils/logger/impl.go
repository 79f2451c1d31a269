/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type ctxKey struct{}

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

func (p *logPrinter) getFuncName(skipCount int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipCount)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	// strip the package path: github.com/org/repo/pkg/name.func -> name.func
	if idx := strings.LastIndex(funcName, "/"); idx >= 0 {
		funcName = funcName[idx+1:]
	}
	return funcName, line
}

func getFuncName(skipCount int) (funcName string, line int) {
	return globalLogPrinter.getFuncName(skipCount + 1)
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	out := fmt.Sprint(args...)
	if len(args) > 1 {
		out = fmt.Sprintln(args...)
		out = out[:len(out)-1]
	}
	t := time.Now()
	return fmt.Sprintf("%s.%03d: %s: [%s:%d]: %s", t.Format("01/02 15:04:05"), t.Nanosecond()/1e6, msgType, funcName, line, out)
}

func (p *logPrinter) print(skipStackFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := p.getFuncName(printSkipFrames + skipStackFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(skipStackFrames, level, args...)
	}
}
