// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package supervisor provides process supervision for Steamlens using suture v4.

The dataset is loaded once before the tree starts and is never reloaded, so
the tree only supervises long-running services:

	RootSupervisor ("steamlens")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in maintenance never interrupts the API.

# Usage

	logger := logging.NewSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddMaintenanceService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	// Blocks until ctx is canceled
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
When the counter exceeds FailureThreshold the supervisor waits
FailureBackoff before the next restart.

Every supervisor event is logged through sutureslog and counted in the
supervisor_service_events_total metric, labelled failure, panic, backoff,
resume or timeout.

# Service Interface

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return nil to stop without restart, an error to be restarted, and return
promptly once ctx is canceled.

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
	}
*/
package supervisor
