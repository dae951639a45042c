package syncing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roost_posts_added_total",
		Help: "The total number of posts added by syncs",
	})

	postsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roost_posts_deleted_total",
		Help: "The total number of posts deleted by forced rescans",
	})

	syncErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roost_sync_errors_total",
		Help: "The total number of author-scoped sync failures",
	}, []string{"stage"})
)
