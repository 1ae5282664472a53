// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package services provides suture.Service wrappers for Steamlens components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and returns when its context is canceled.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve
  - Shutdown gets its own timeout for draining connections

Uptime Reporter (UptimeService):
  - Refreshes the app_uptime_seconds gauge on a ticker

# Usage

	tree.AddMaintenanceService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
