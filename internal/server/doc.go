// Package server provides HTTP routing, middleware, and OAuth handling for the dashboard.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Authentication
//
// [AuthHandler] implements the OAuth2 authorization-code flow against Spotify:
// login redirect, callback exchange, and logout. The callback builds the
// credential bundle and hands it to the session manager; every failure mode
// redirects to the login page with a reason code in the URL.
//
// [LocalOAuthHandler] serves the one-shot callback used by the CLI auth
// command: a temporary HTTP server handles a single authorization callback,
// sends the token over a channel, and the command shuts the server down.
//
// # Dashboard Endpoints
//
// [DashboardHandler] composes the listening-data cards (top tracks and
// artists, vibe vector, library snapshot, playlists) with one concurrent
// fan-out per request. [NowPlayingHandler] is the thin proxy polled by the
// display layer: 200 with payload, 204 when idle, 401 unauthorized, 500 on
// upstream failure.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
