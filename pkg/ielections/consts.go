/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ielections

const (
	// attempts to renew the lease on storage error before the lease is given up
	maxRenewRetries = 2

	// renew interval = lease duration / renewIntervalDivisor
	renewIntervalDivisor = 4

	// pause between failed renew attempts = lease duration / retryIntervalDivisor
	retryIntervalDivisor = 20

	// verbose log on each of the first renewals, then every Nth renewal
	verboseRenewals    = 10
	renewLogEachNTicks = 200
)
