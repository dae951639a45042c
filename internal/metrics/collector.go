package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"roost/internal/persistence/authors"
	"roost/internal/persistence/posts"
)

var (
	tableCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "roost_table_count",
		Help: "Record count for a table.",
	}, []string{"table"})
)

// Collector periodically refreshes store-level gauges.
type Collector struct {
	Logger  *slog.Logger
	Authors *authors.Repository
	Posts   *posts.Repository
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

func (c *Collector) collect(ctx context.Context) {
	if count, err := c.Authors.Count(ctx); err == nil {
		tableCount.WithLabelValues("authors").Set(float64(count))
	} else {
		c.Logger.Warn("author count failed", "error", err)
	}

	if count, err := c.Posts.Count(ctx); err == nil {
		tableCount.WithLabelValues("posts").Set(float64(count))
	} else {
		c.Logger.Warn("post count failed", "error", err)
	}
}
