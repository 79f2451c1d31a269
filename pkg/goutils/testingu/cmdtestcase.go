/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package testingu

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// CmdTestCase describes one run of a CLI entry point and the expected outcome
type CmdTestCase struct {
	Name                   string
	Args                   []string
	ExpectedErr            error
	ExpectedErrPatterns    []string
	ExpectedStdoutPatterns []string
	ExpectedStderrPatterns []string
}

// RunCmdTestCases runs execute for each test case with stdout and stderr captured
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, testCases []CmdTestCase, version string) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr, err := CaptureStdoutStderr(func() error {
				return execute(tc.Args, version)
			})
			checkOutput(t, "stdout", tc.ExpectedStdoutPatterns, stdout)
			checkOutput(t, "stderr", tc.ExpectedStderrPatterns, stderr)
			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

func checkError(t *testing.T, expectedErr error, expectedPatterns []string, actual error) {
	t.Helper()
	if expectedErr == nil && len(expectedPatterns) == 0 {
		if actual != nil {
			t.Errorf("unexpected error: %v", actual)
		}
		return
	}
	if actual == nil {
		t.Errorf("error expected but nothing returned")
		return
	}
	if expectedErr != nil && !errors.Is(actual, expectedErr) {
		t.Errorf("expected error `%v`, got `%v`", expectedErr, actual)
	}
	for _, pattern := range expectedPatterns {
		if !strings.Contains(actual.Error(), pattern) {
			t.Errorf("expected error pattern `%s`, got `%v`", pattern, actual)
		}
	}
}

func checkOutput(t *testing.T, title string, expectedPatterns []string, actual string) {
	t.Helper()
	for _, pattern := range expectedPatterns {
		if !strings.Contains(actual, pattern) {
			t.Errorf("%s: expected pattern `%s`, actual `%s`", title, pattern, actual)
		}
	}
}

// CaptureStdoutStderr runs f with os.Stdout and os.Stderr redirected to pipes
func CaptureStdoutStderr(f func() error) (stdout string, stderr string, err error) {
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		// notest
		return "", "", err
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		// notest
		return "", "", err
	}

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutWriter, stderrWriter
	defer func() {
		os.Stdout, os.Stderr = origStdout, origStderr
	}()

	wg := sync.WaitGroup{}
	read := func(r io.Reader, dst *string) {
		defer wg.Done()
		b := bytes.Buffer{}
		_, _ = io.Copy(&b, r)
		*dst = b.String()
	}
	wg.Add(2)
	go read(stdoutReader, &stdout)
	go read(stderrReader, &stderr)

	err = f()
	stdoutWriter.Close()
	stderrWriter.Close()
	wg.Wait()
	return stdout, stderr, err
}
