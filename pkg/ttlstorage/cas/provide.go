/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package cas is the ielections.ITTLStorage over Cassandra or Scylla lightweight transactions
package cas

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	retrier "github.com/voedger/clustersingleton/pkg/goutils/retry"
	"github.com/voedger/clustersingleton/pkg/ielections"
)

// Provide connects to the cluster, creates the keyspace and the leases table if absent.
// cleanup closes the session.
func Provide(params Params) (s ielections.ITTLStorage[string, string], cleanup func(), err error) {
	if len(params.Hosts) == 0 {
		return nil, nil, fmt.Errorf("%w: Hosts can not be empty", ErrInvalidParams)
	}
	if len(params.KeyspaceWithReplication) == 0 {
		return nil, nil, fmt.Errorf("%w: KeyspaceWithReplication can not be empty", ErrInvalidParams)
	}
	params.KeyspaceWithReplication = html.UnescapeString(params.KeyspaceWithReplication)
	if params.Keyspace == "" {
		params.Keyspace = DefaultKeyspace
	}

	session, err := connect(params)
	if err != nil {
		return nil, nil, err
	}
	st := &storage{
		session: session,
		table:   params.Keyspace + "." + leasesTable,
	}
	if err := st.createSchema(params); err != nil {
		session.Close()
		return nil, nil, err
	}
	return st, session.Close, nil
}

func clusterConfig(params Params) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(strings.Split(params.Hosts, ",")...)
	cluster.Port = params.Port
	if cluster.Port == 0 {
		cluster.Port = DefaultPort
	}
	cluster.Consistency = gocql.Quorum
	cluster.SerialConsistency = gocql.LocalSerial
	cluster.Timeout = params.Timeout
	if cluster.Timeout == 0 {
		cluster.Timeout = defaultTimeout
	}
	cluster.CQLVersion = params.CQLVersion
	if cluster.CQLVersion == "" {
		cluster.CQLVersion = defaultCQLVersion
	}
	if params.ProtoVersion > 0 {
		cluster.ProtoVersion = params.ProtoVersion
	}
	if params.NumRetries > 0 {
		cluster.RetryPolicy = &gocql.SimpleRetryPolicy{NumRetries: params.NumRetries}
	}
	if params.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{Username: params.Username, Password: params.Pwd}
	}
	if params.DC != "" {
		cluster.PoolConfig.HostSelectionPolicy = gocql.DCAwareRoundRobinPolicy(params.DC)
	}
	return cluster
}

func connect(params Params) (*gocql.Session, error) {
	connectTimeout := params.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	cfg := retrier.NewConfig(connectRetryBaseDelay, connectRetryMaxDelay)
	cfg.OnError = func(attempt int, delay time.Duration, err error) {
		logger.Warning(fmt.Sprintf("cas ttl storage: connect attempt %d to %s failed, next in %s: %v", attempt, params.Hosts, delay, err))
	}
	session, err := retrier.Retry(ctx, cfg, clusterConfig(params).CreateSession)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", params.Hosts, err)
	}
	return session, nil
}

func (s *storage) createSchema(params Params) error {
	stmts := []string{
		fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = %s", params.Keyspace, params.KeyspaceWithReplication),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (key text PRIMARY KEY, value text)", s.table),
	}
	for _, stmt := range stmts {
		if err := s.session.Query(stmt).Consistency(gocql.Quorum).Exec(); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	logger.Verbose("cas ttl storage: schema is ready in " + params.Keyspace)
	return nil
}
