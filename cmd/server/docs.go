// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// General API information for swag.
//
// @title Steamlens API
// @version 1.0
// @description Read-only analytics over game platform reviews, playtime and catalogs.
// @description
// @description ## Error Responses
// @description
// @description Successful responses are the bare query result. Errors use this envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Genre \"Acton\" not found",
// @description     "details": {"kind": "genre", "key": "Acton", "suggestions": ["Action"]},
// @description     "request_id": "..."
// @description   }
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Query endpoints allow 100 requests per minute per IP address by default.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/steamlens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Queries
// @tag.description Aggregate queries over reviews, developer catalogs, expenses and playtime
//
// @tag.name Recommendations
// @tag.description Genre-similarity game recommendations
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Core
// @tag.description Landing page
package main
