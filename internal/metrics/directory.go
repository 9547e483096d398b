// Package metrics exposes prometheus instrumentation for the directory
// provider.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pvrfs_listings_total",
		Help: "Directory listings by namespace and outcome",
	}, []string{"namespace", "outcome"}) // outcome=success|failure

	listingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pvrfs_listing_duration_seconds",
		Help:    "Time spent building one directory listing",
		Buckets: prometheus.DefBuckets,
	}, []string{"namespace"})

	refreshJobsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pvrfs_refresh_jobs_total",
		Help: "Total number of in-progress recount jobs executed",
	})

	refreshFoldersScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pvrfs_refresh_folders_scanned_total",
		Help: "Total number of folders rescanned by recount jobs",
	})

	refreshUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pvrfs_refresh_updates_total",
		Help: "Total number of folder entries whose in-progress count changed",
	})
)

// ObserveListing records one listing call.
func ObserveListing(namespace string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	listingsTotal.WithLabelValues(namespace, outcome).Inc()
	listingDuration.WithLabelValues(namespace).Observe(elapsed.Seconds())
}

// ObserveRefreshJob records one completed in-progress recount job.
func ObserveRefreshJob(folders, updates int) {
	refreshJobsTotal.Inc()
	refreshFoldersScanned.Add(float64(folders))
	refreshUpdatesTotal.Add(float64(updates))
}
