/*
Package observability provides hooks for monitoring the resolver.

Metrics exports Prometheus counters and gauges fed by domain.Hooks, and
LogHooks traces the same events through a structured logger. Both can be
combined with domain.Hooks.Merge.
*/
package observability
