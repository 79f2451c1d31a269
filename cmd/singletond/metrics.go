/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voedger/clustersingleton/pkg/goutils/logger"
	imetrics "github.com/voedger/clustersingleton/pkg/metrics"
)

func newMetricsHandler(metrics imetrics.IMetrics) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(imetrics.NewCollector(metrics))
	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}

// serveMetrics starts serving metrics in background, does nothing if port is 0
func serveMetrics(port int, metrics imetrics.IMetrics) (stop func(), err error) {
	if port == 0 {
		return func() {}, nil
	}
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen metrics port: %w", err)
	}
	server := &http.Server{
		Handler:           newMetricsHandler(metrics),
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed:", err)
		}
	}()
	logger.Info(fmt.Sprintf("metrics are served on %s%s", listener.Addr(), metricsPath))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsServerShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("metrics server shutdown failed:", err)
		}
		<-done
	}, nil
}
