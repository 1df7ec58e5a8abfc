package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	promapi "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"vigil/internal/errors"
)

// PromClient runs instant queries against a Prometheus-compatible
// backend through the official client.
type PromClient struct {
	prom    promapi.API
	timeout time.Duration
}

// NewPromClient creates a client for the given base URL, e.g.
// "http://prometheus:9090". The timeout bounds each query.
func NewPromClient(baseURL string, timeout time.Duration) (*PromClient, error) {
	client, err := api.NewClient(api.Config{Address: baseURL})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid backend URL: "+baseURL,
			"Use a full URL with scheme and host, e.g. http://prometheus:9090")
	}
	return &PromClient{prom: promapi.NewAPI(client), timeout: timeout}, nil
}

// Query runs one instant query and returns its samples. Warnings from
// the backend are non-fatal and dropped; only the returned series matter
// here.
func (c *PromClient) Query(ctx context.Context, query string) ([]Sample, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, _, err := c.prom.Query(ctx, query, time.Now())
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrQuery,
			"querying backend", "verify the backend URL is reachable")
	}

	vector, ok := value.(model.Vector)
	if !ok {
		return nil, errors.New(errors.ErrParse,
			fmt.Sprintf("backend returned %s, expected an instant vector", value.Type()),
			"check that the query produces an instant vector")
	}

	samples := make([]Sample, 0, len(vector))
	for _, s := range vector {
		labels := make(map[string]string, len(s.Metric))
		for name, val := range s.Metric {
			labels[string(name)] = string(val)
		}
		samples = append(samples, Sample{Labels: labels, Value: float64(s.Value)})
	}
	return samples, nil
}
