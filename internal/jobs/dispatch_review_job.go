package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/queries"
)

// DispatchReviewJob periodically surfaces the dispatch backlog: orders
// fully packed and waiting for the final review. It only observes and
// logs; the review itself stays a human action.
type DispatchReviewJob struct {
	handler queries.ListDispatchReadyOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchReviewJob creates a job that reports the dispatch backlog
// every minute.
func NewDispatchReviewJob(
	handler queries.ListDispatchReadyOrdersQueryHandler,
	logger *slog.Logger,
) *DispatchReviewJob {
	return &DispatchReviewJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "dispatch_review_job"),
	}
}

// Start begins the dispatch review job to run every minute.
func (j *DispatchReviewJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewListDispatchReadyOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch review sweep failed", "error", err)
			return
		}

		if len(orders) == 0 {
			return
		}

		lineCount := 0
		for _, order := range orders {
			lineCount += len(order.Lines)
		}
		j.logger.InfoContext(ctx, "Orders awaiting dispatch review",
			"orders", len(orders),
			"lines", lineCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch review job started (running every minute)")
	return nil
}

// Stop stops the dispatch review job.
func (j *DispatchReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch review job stopped")
}
