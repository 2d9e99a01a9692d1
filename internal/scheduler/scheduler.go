package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/metrics"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
)

// StatsRefresher periodically recomputes the landing-page statistics from the
// live donors and supply_posts tables and writes them into the statistics table.
type StatsRefresher struct {
	Donors *repo.DonorRepo
	Posts  *repo.SupplyPostRepo
	Stats  *repo.StatisticRepo
}

// Refresh recomputes every statistic once. Each value is upserted independently;
// a failure on one statistic aborts the run and is reported to the caller.
func (s *StatsRefresher) Refresh(ctx context.Context) error {
	donorCount, donationSum, err := s.Donors.Totals(ctx)
	if err != nil {
		return err
	}
	postCount, err := s.Posts.Count(ctx)
	if err != nil {
		return err
	}

	if err := s.Stats.Upsert(ctx, "total_raised", "Total donations raised", donationSum); err != nil {
		return err
	}
	if err := s.Stats.Upsert(ctx, "total_donors", "Registered donors", float64(donorCount)); err != nil {
		return err
	}
	return s.Stats.Upsert(ctx, "total_posts", "Supply posts published", float64(postCount))
}

// Run starts a cron scheduler that refreshes the statistics on the given spec
// (e.g. "@every 10m"). It refreshes once immediately, then on schedule until
// ctx is canceled.
func Run(ctx context.Context, spec string, refresher *StatsRefresher) error {
	job := func() {
		if err := refresher.Refresh(ctx); err != nil {
			slog.Error("stats refresh failed", "error", err)
			metrics.StatsRefreshTotal.WithLabelValues("error").Inc()
			return
		}
		metrics.StatsRefreshTotal.WithLabelValues("ok").Inc()
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, job); err != nil {
		return err
	}

	job()
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
