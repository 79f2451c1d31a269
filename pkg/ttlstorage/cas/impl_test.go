/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cas

import (
	"os"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/voedger/clustersingleton/pkg/ielections"
)

// runs against a live cluster only: SINGLETON_CAS_HOSTS=127.0.0.1 go test ./...
func TestElectionsOverCasStorage(t *testing.T) {
	hosts, ok := os.LookupEnv("SINGLETON_CAS_HOSTS")
	if !ok {
		t.Skip("SINGLETON_CAS_HOSTS is not set")
	}
	storage, cleanup, err := Provide(Params{
		Hosts:                   hosts,
		Port:                    port(),
		KeyspaceWithReplication: SimpleWithReplication,
	})
	require.NoError(t, err)
	defer cleanup()

	ielections.ElectionsTestSuite(t, storage, ielections.TestDataGen[string, string]{
		NextKey:     uuid.NewString,
		NextVal:     uuid.NewString,
		RealTimeTTL: true,
	})
}

func TestInvalidParams(t *testing.T) {
	require := require.New(t)

	_, _, err := Provide(Params{KeyspaceWithReplication: SimpleWithReplication})
	require.ErrorIs(err, ErrInvalidParams)

	_, _, err = Provide(Params{Hosts: "127.0.0.1"})
	require.ErrorIs(err, ErrInvalidParams)
}

func TestClusterConfig(t *testing.T) {
	require := require.New(t)
	cluster := clusterConfig(Params{
		Hosts:      "h1,h2",
		Username:   "user",
		Pwd:        "pwd",
		NumRetries: 3,
		DC:         "dc1",
	})
	require.Equal([]string{"h1", "h2"}, cluster.Hosts)
	require.Equal(DefaultPort, cluster.Port)
	require.Equal(defaultCQLVersion, cluster.CQLVersion)
	require.Equal(defaultTimeout, cluster.Timeout)
	require.NotNil(cluster.Authenticator)
	require.NotNil(cluster.RetryPolicy)
	require.NotNil(cluster.PoolConfig.HostSelectionPolicy)
}

func port() int {
	if value, ok := os.LookupEnv("SINGLETON_CAS_PORT"); ok {
		if p, err := strconv.Atoi(value); err == nil {
			return p
		}
	}
	return DefaultPort
}
