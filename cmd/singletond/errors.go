/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	errUnknownStorage = errors.New("unknown storage")
	errUnknownFlavor  = errors.New("unknown entity flavor")
	errNoServices     = errors.New("at least one --service is required")
)
