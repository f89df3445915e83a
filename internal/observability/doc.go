// Package observability exposes prediction-run metrics in Prometheus form.
package observability
