/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgFormatter(t *testing.T) {
	require := require.New(t)

	out := globalLogPrinter.getFormattedMsg("", "eos.publish", 120, "line1")
	require.Contains(out, ": [eos.publish:120]: line1")

	out = globalLogPrinter.getFormattedMsg("", "", 121, "line1", "line2")
	require.Contains(out, ": [:121]: line1 line2")

	out = globalLogPrinter.getFormattedMsg(verbosePrefix, "group.reconcile", 126, "a/b", "c")
	require.Contains(out, "---: [group.reconcile:126]: a/b c")
}

func TestLevelPrefix(t *testing.T) {
	require := require.New(t)
	defer SetLogLevelWithRestore(LogLevelInfo)()

	for level, prefix := range map[TLogLevel]string{
		LogLevelError:   errorPrefix,
		LogLevelWarning: warningPrefix,
		LogLevelInfo:    infoPrefix,
		LogLevelVerbose: verbosePrefix,
		LogLevelTrace:   tracePrefix,
	} {
		SetLogLevel(level)
		require.Equal(prefix, getLevelPrefix(globalLogPrinter.logLevel))
	}
	SetLogLevel(7)
	require.Empty(getLevelPrefix(globalLogPrinter.logLevel))
}

func TestGetFuncName(t *testing.T) {
	funcName, line := globalLogPrinter.getFuncName(2)
	require.Equal(t, "testing.tRunner", funcName)
	require.Greater(t, line, 0)

	funcName, _ = globalLogPrinter.getFuncName(1)
	require.Equal(t, "logger.TestGetFuncName", funcName)
}

func TestCtxAttrs(t *testing.T) {
	require := require.New(t)
	defer SetLogLevelWithRestore(LogLevelVerbose)()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	SetCtxWriters(out, errOut)
	defer SetCtxWriters(os.Stdout, os.Stderr)

	ctx := WithContextAttrs(context.Background(), LogAttr_Node, "node1")
	entityCtx := WithContextAttrs(ctx, LogAttr_Entity, "type1|svc1")
	entityCtx = WithContextAttrs(entityCtx, LogAttr_Node, "node2")

	InfoCtx(ctx, "hello")
	require.Contains(out.String(), "msg=hello")
	require.Contains(out.String(), "node=node1")
	require.NotContains(out.String(), "entity=")
	require.Contains(out.String(), "src=logger.TestCtxAttrs:")

	out.Reset()
	VerboseCtx(entityCtx, "owned")
	require.Contains(out.String(), "level=VERBOSE")
	require.Contains(out.String(), "entity=type1|svc1")
	require.Contains(out.String(), "node=node2")
	require.Equal(1, strings.Count(out.String(), "node="))

	TraceCtx(entityCtx, "not logged")
	require.NotContains(out.String(), "not logged")

	ErrorCtx(ctx, "failed")
	require.Contains(errOut.String(), "msg=failed")
}

func TestParseLogLevel(t *testing.T) {
	require := require.New(t)
	for _, level := range []TLogLevel{LogLevelNone, LogLevelError, LogLevelWarning, LogLevelInfo, LogLevelVerbose, LogLevelTrace} {
		parsed, err := ParseLogLevel(strings.ToUpper(level.String()))
		require.NoError(err)
		require.Equal(level, parsed)
	}
	parsed, err := ParseLogLevel("debug")
	require.NoError(err)
	require.Equal(LogLevelVerbose, parsed)

	_, err = ParseLogLevel("loud")
	require.ErrorIs(err, ErrUnknownLogLevel)
	require.Equal("TLogLevel(7)", TLogLevel(7).String())
}

func TestPrintLine(t *testing.T) {
	require := require.New(t)
	defer SetLogLevelWithRestore(LogLevelInfo)()
	var lines []string
	PrintLine = func(level TLogLevel, line string) {
		lines = append(lines, level.String()+" "+line)
	}
	defer func() { PrintLine = DefaultPrintLine }()

	Info("hello", 42)
	Verbose("not printed")
	Error("failed")
	require.Len(lines, 2)
	require.Contains(lines[0], "info ")
	require.Contains(lines[0], "===: [logger.TestPrintLine:")
	require.Contains(lines[0], "]: hello 42")
	require.True(strings.HasPrefix(lines[1], "error "))
}
