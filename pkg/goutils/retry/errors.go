/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package retrier

import "errors"

var ErrInvalidConfig = errors.New("invalid retry config")
