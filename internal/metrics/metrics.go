package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TweetsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetsink_tweets_stored_total",
		Help: "Tweets committed to the store",
	})
	TweetsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetsink_tweets_skipped_total",
		Help: "Submitted tweets skipped because their id was already seen",
	})
	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetsink_users_created_total",
		Help: "Users created while resolving tweet owners",
	})
	Batches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tweetsink_batches_total",
		Help: "Ingestion batches by result",
	}, []string{"result"})
	SeenIDs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tweetsink_seen_ids",
		Help: "Tweet ids held by the deduplication cache",
	})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

const (
	BATCH_OK       = "ok"
	BATCH_CONFLICT = "conflict"
	BATCH_ERROR    = "error"
)

func init() {
	prometheus.MustRegister(TweetsStored, TweetsSkipped, UsersCreated, Batches, SeenIDs, RequestDuration)
}
