/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	"github.com/voedger/clustersingleton/pkg/ieos"
	"github.com/voedger/clustersingleton/pkg/ieosimpl"
	"github.com/voedger/clustersingleton/pkg/isingleton"
	"github.com/voedger/clustersingleton/pkg/isingletonimpl"
)

func newRunCmd() *cobra.Command {
	params := NewDefaultCLIParams()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the node and register the demo services",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNode(cmd.Context(), params)
		},
	}
	cmd.Flags().StringVar(&params.Storage, "storage", params.Storage, "Leases storage: mem, bbolt or cas")
	cmd.Flags().StringVar(&params.BBoltDir, "bbolt-dir", params.BBoltDir, "Directory of the bbolt database")
	cmd.Flags().StringVar(&params.CasHosts, "cas-hosts", params.CasHosts, "Comma separated Cassandra hosts")
	cmd.Flags().IntVar(&params.CasPort, "cas-port", params.CasPort, "Cassandra port")
	cmd.Flags().StringVar(&params.CasKeyspace, "cas-keyspace", params.CasKeyspace, "Cassandra keyspace")
	cmd.Flags().StringVar(&params.NodeID, "node-id", params.NodeID, "Node ID, must be unique in the cluster, random if empty")
	cmd.Flags().StringArrayVar(&params.Services, "service", params.Services, "Service group identifier of a demo service, repeatable")
	cmd.Flags().StringVar(&params.Flavor, "flavor", params.Flavor, "Entity flavor: plain or path")
	cmd.Flags().IntVar(&params.LeadershipDuration, "leadership-duration", params.LeadershipDuration, "Lease duration in seconds")
	cmd.Flags().IntVar(&params.MetricsPort, "metrics-port", params.MetricsPort, "Port to serve metrics on, 0 to disable")
	cmd.Flags().DurationVar(&params.TickInterval, "tick-interval", params.TickInterval, "Interval between ticks of an instantiated demo service")
	cmd.Flags().DurationVar(&params.RunFor, "run-for", params.RunFor, "Stop after the duration, 0 to run until interrupted")
	return cmd
}

func runNode(ctx context.Context, params CLIParams) error {
	if len(params.Services) == 0 {
		return errNoServices
	}
	if params.Flavor != flavorPlain && params.Flavor != flavorPath {
		return fmt.Errorf("%w: %s", errUnknownFlavor, params.Flavor)
	}
	node, cleanup, err := wireNode(params)
	if err != nil {
		return fmt.Errorf("node not wired: %w", err)
	}
	defer cleanup()

	if params.RunFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.RunFor)
		defer cancel()
	}
	if params.Flavor == flavorPath {
		return serve[ieos.PathEntity](ctx, node, params, isingletonimpl.PathEntityStrategy{})
	}
	return serve[ieos.Entity](ctx, node, params, isingletonimpl.PlainEntityStrategy{})
}

// serve runs the provider with the demo services until ctx is done
func serve[E ieos.IEntity](ctx context.Context, node wiredNode, params CLIParams, strategy isingletonimpl.IEntityStrategy[E]) error {
	eos, eosCleanup := ieosimpl.Provide[E](node.EOSConfig, node.Storage, node.Clock)
	defer eosCleanup()

	provider := isingletonimpl.Provide[E](eos, strategy, node.Metrics, node.EOSConfig.NodeID)
	if err := provider.InitializeProvider(); err != nil {
		return err
	}
	defer provider.Close()

	stopMetrics, err := serveMetrics(params.MetricsPort, node.Metrics)
	if err != nil {
		return err
	}
	defer stopMetrics()

	for _, id := range params.Services {
		s := newDemoService(isingleton.ServiceGroupIdentifier(id), node.Clock, params.TickInterval)
		reg, err := provider.RegisterClusterSingletonService(s)
		if err != nil {
			return fmt.Errorf("failed to register %s: %w", id, err)
		}
		defer reg.Close()
	}

	logCtx := logger.WithContextAttrs(ctx, logger.LogAttr_Node, node.EOSConfig.NodeID)
	logger.InfoCtx(logCtx, fmt.Sprintf("running, storage: %s, flavor: %s, services: %v", params.Storage, params.Flavor, params.Services))
	<-ctx.Done()
	logger.InfoCtx(logCtx, "stopping")
	return nil
}
