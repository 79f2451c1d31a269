/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isingleton

import "errors"

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrDuplicateRegistration  = errors.New("service group already registered")
	ErrElectionBackendFailure = errors.New("election backend failure")
	ErrProviderClosed         = errors.New("cluster singleton service provider is closed")
)
