// Package metrics exposes prometheus instrumentation for the batch jobs.
// The jobs have no user-visible failure surface, metrics and logs are the
// operator's only window into them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// JobRuns counts completed job executions by job name and outcome
	JobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_job_runs_total",
		Help: "Completed batch job runs",
	}, []string{"job", "status"})

	// JobDuration tracks job execution time by job name
	JobDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blog_job_duration_seconds",
		Help:    "Batch job execution time",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})

	// RecommendationUsers counts per-user outcomes of the recommendation job
	RecommendationUsers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_recommendation_users_total",
		Help: "Per-user recommendation outcomes",
	}, []string{"outcome"})

	// PostsAnalyzed counts keyword extraction outcomes
	PostsAnalyzed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_posts_analyzed_total",
		Help: "Posts processed by keyword extraction",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(JobRuns, JobDuration, RecommendationUsers, PostsAnalyzed)
}

// ObserveJob records a finished job run with its duration and outcome
func ObserveJob(job string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	JobRuns.WithLabelValues(job, status).Inc()
	JobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

// Handler returns the /metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}
