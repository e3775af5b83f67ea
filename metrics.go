package browserx

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter  = otel.Meter("github.com/minweb/browserx")
	tracer = otel.Tracer("github.com/minweb/browserx")
)

var (
	// fetchesTotal tracks every Fetch call, across all schemes.
	fetchesTotal, _ = meter.Int64Counter("browserx.fetches")

	// cacheHits tracks successful responses served from the response cache
	// without reading a body from the transport.
	cacheHits, _ = meter.Int64Counter("browserx.cache_hits")

	// redirectsFollowed tracks individual redirect hops, not chains.
	redirectsFollowed, _ = meter.Int64Counter("browserx.redirects_followed")

	fetchDuration, _ = meter.Float64Histogram("browserx.fetch_duration",
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10))
)
