/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cas

import "errors"

var ErrInvalidParams = errors.New("invalid cassandra params")
