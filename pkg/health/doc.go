// Package health provides liveness and readiness handlers.
//
// [LivenessHandler] always answers OK. [ReadinessHandler] runs a set of
// named [Checks] in parallel under a shared timeout and answers 503 when
// any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "store": st.Healthcheck,
//	    "redis": redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"store":{"status":"healthy"},"redis":{"status":"unhealthy","error":"connection refused"}}}
//
// [Run] exposes the same check run for callers outside HTTP, such as a CLI
// preflight.
package health
