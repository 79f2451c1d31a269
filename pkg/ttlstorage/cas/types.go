/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cas

import (
	"time"

	"github.com/gocql/gocql"
)

type Params struct {
	// Comma separated list of hosts
	Hosts        string
	Port         int
	Username     string
	Pwd          string
	ProtoVersion int
	CQLVersion   string
	NumRetries   int
	DC           string
	Timeout      time.Duration

	Keyspace string

	// e.g. "{ 'class' : 'SimpleStrategy', 'replication_factor' : 1 }"
	KeyspaceWithReplication string

	// how long to wait for the cluster on Provide
	ConnectTimeout time.Duration
}

type storage struct {
	session *gocql.Session
	table   string
}
