package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderStatsJob periodically logs a census of orders per status.
// The census is a read-only aggregate query; it never touches order state.
type OrderStatsJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderStatsJob creates a job that reports order counts per status
// once a minute.
func NewOrderStatsJob(db *gorm.DB, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_stats_job"),
	}
}

// Start begins the order stats job to run at the top of every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		counts, err := j.collect(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for _, count := range counts {
			attrs = append(attrs, count.Status, count.Total)
		}
		j.logger.InfoContext(ctx, "Order census", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

type statusCount struct {
	Status string
	Total  int64
}

func (j *OrderStatsJob) collect(ctx context.Context) ([]statusCount, error) {
	var counts []statusCount

	result := j.db.WithContext(ctx).Raw(`
		SELECT o.status, COUNT(*) AS total
		FROM orders o
		GROUP BY o.status
		ORDER BY o.status
	`).Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}
