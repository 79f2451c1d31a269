/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import "errors"

var ErrBucketNotFound = errors.New("bucket not found")
