// Package internal is the small HTTP framework the glossary server is built on.
//
// It wraps a chi router with a handler signature that returns errors, a
// Context carrying request helpers and HTMX-aware rendering, global and
// per-route middleware, health endpoints and a graceful runtime.
//
// # Core Types
//
//   - App: owns the router, error handling, health checks and Run
//   - Context: request/response access, rendering and request scoped values
//   - Router: what a Handler uses to declare routes
//   - Handler: a type that declares routes
//   - HandlerFunc: func(Context) error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to the store
// or the glossary service:
//
//	func (h *Glossary) letter(c internal.Context) error {
//	    frags, err := h.svc.Section(c, c.Param("letter"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.Render(http.StatusOK, views.Section(letter, frags))
//	}
//
// # HTMX
//
// Requests carrying HX-Request get every status rewritten to 200 by
// ResponseWriter so htmx swaps error fragments instead of dropping them.
// RenderPartial picks the partial for htmx and the full page otherwise.
//
// # Running
//
//	app := internal.New(
//	    internal.WithCustomLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewGlossary(svc)),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("store", st.Healthcheck)),
//	)
//	err := app.Run(":8080", internal.ShutdownHook(func(context.Context) error { return st.Close() }))
//
// Run binds the listener, runs startup hooks, serves until SIGINT/SIGTERM or
// the base context is cancelled, then shuts down the server and runs the
// shutdown hooks in order.
package internal
