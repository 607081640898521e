/*
Package observability provides tools for monitoring the turing engine.

Metrics are exposed as Prometheus collectors and fed by the engine's lifecycle hooks,
so the engine itself stays free of any metrics dependency.
*/
package observability
