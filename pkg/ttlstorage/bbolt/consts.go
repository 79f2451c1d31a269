/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import "time"

const (
	leasesBucketName      = "leases"
	expirationsBucketName = "expirations"

	DefaultFileName        = "leases.db"
	DefaultCleanupInterval = time.Minute
	openTimeout            = time.Second
)
