/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ieos

import "errors"

var ErrCandidateAlreadyRegistered = errors.New("candidate already registered")

var ErrMalformedEntity = errors.New("malformed entity")
