package syncing

import (
	"context"

	"roost/internal/core"
	"roost/pkg/async"
)

// Sweep syncs every author directory under the archive root through a bounded
// worker pool. A failing author never aborts the sweep; failures are logged
// and counted per author. The returned report aggregates all units.
//
// Cancelling ctx stops new units from starting; units already running finish,
// so their commits stay whole.
func (s *Syncer) Sweep(ctx context.Context, forceRescan bool) (core.SyncReport, error) {
	handles, err := s.Archive.Authors()
	if err != nil {
		return core.SyncReport{}, err
	}

	s.Logger.Info("sweep started", "authors", len(handles), "force_rescan", forceRescan)

	reports := async.Pool(ctx, s.Config.SweepConcurrency, handles,
		func(ctx context.Context, handle string) core.SyncReport {
			return s.Sync(ctx, handle, forceRescan)
		})

	total := core.SyncReport{}
	failures := 0
	for _, report := range reports {
		total.Added += report.Added
		total.Deleted += report.Deleted
		if report.Err != nil {
			failures++
		}
	}

	s.Logger.Info("sweep finished",
		"authors", len(handles), "added", total.Added, "deleted", total.Deleted, "failures", failures)
	return total, nil
}
