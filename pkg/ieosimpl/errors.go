/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieosimpl

import "errors"

var ErrClosed = errors.New("entity ownership service is closed")
