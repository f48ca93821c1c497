// Package observability provides prometheus metrics shared across layers.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastemap_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache-aside hits and misses by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastemap_cache_requests_total",
		Help: "Total cache-aside lookups by key prefix and outcome",
	}, []string{"prefix", "outcome"})

	// CascadeDeletes counts cascade deletions by root entity type.
	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastemap_cascade_deletes_total",
		Help: "Total moderation cascade deletions by root entity",
	}, []string{"entity"})
)
