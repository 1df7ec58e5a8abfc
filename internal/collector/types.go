// Package collector fetches live metrics from a Prometheus-compatible
// backend and shapes them into full node and service candidates. Values
// the backend cannot answer keep their synthetic baselines, so a partial
// scrape still yields complete records.
package collector

import "context"

// Sample is one instant-vector result: a label set and its value.
type Sample struct {
	Labels map[string]string
	Value  float64
}

// QueryRunner executes one instant query. Implemented by the HTTP client
// and by test fakes.
type QueryRunner interface {
	Query(ctx context.Context, query string) ([]Sample, error)
}
