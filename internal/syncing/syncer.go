package syncing

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"roost/internal/archive"
	"roost/internal/config"
	"roost/internal/core"
	"roost/internal/persistence/authors"
	"roost/internal/persistence/posts"
)

// Syncer reconciles one author's archive directory into the store. Syncs for
// the same handle are serialized through a per-handle lock; different authors
// may sync concurrently.
type Syncer struct {
	Logger  *slog.Logger
	Config  *config.Config
	Archive *archive.Archive
	Authors *authors.Repository
	Posts   *posts.Repository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (s *Syncer) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "syncing.Syncer")
	s.locks = map[string]*sync.Mutex{}
	return nil
}

func (s *Syncer) lockFor(handle string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[handle]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[handle] = lock
	}
	return lock
}

// Sync processes the author's directory and commits newly discovered posts.
// With forceRescan the author's existing posts are deleted first and the
// directory is rescanned unconditionally; without it, an author that already
// has posts gets only a profile refresh.
//
// Sync never fails: every error is author-scoped, logged, and reflected in
// the report's counts. Report.Err exists for sweep accounting only.
func (s *Syncer) Sync(ctx context.Context, handle string, forceRescan bool) core.SyncReport {
	lock := s.lockFor(handle)
	lock.Lock()
	defer lock.Unlock()

	report := core.SyncReport{Handle: handle}

	if !s.Archive.HasAuthor(handle) {
		s.Logger.Error("author directory not found", "author", handle, "dir", s.Archive.AuthorDir(handle))
		return report
	}

	author, err := s.Authors.FindByHandle(ctx, handle)
	if err == nil && author == nil {
		author = &core.Author{Handle: handle}
		err = s.Authors.Create(ctx, author)
		if err == nil {
			s.Logger.Info("created author", "author", handle)
		}
	}
	if err != nil {
		s.Logger.Error("author lookup failed", "author", handle, "error", err)
		syncErrors.WithLabelValues("author_lookup").Inc()
		report.Err = err
		return report
	}

	// The profile refresh is its own transactional unit and always runs; a
	// failure here must not block the post scan.
	s.refreshProfile(ctx, author)

	if forceRescan {
		deleted, err := s.Posts.DeleteByAuthor(ctx, author.ID)
		report.Deleted = deleted
		if err != nil {
			s.Logger.Error("failed to delete existing posts", "author", handle, "error", err)
			syncErrors.WithLabelValues("delete").Inc()
			report.Err = err
			return report
		}
		postsDeleted.Add(float64(deleted))
		s.Logger.Info("force rescan, existing posts deleted", "author", handle, "deleted", deleted)
	} else {
		count, err := s.Posts.CountByAuthor(ctx, author.ID)
		if err != nil {
			s.Logger.Error("post count lookup failed", "author", handle, "error", err)
			syncErrors.WithLabelValues("count").Inc()
			report.Err = err
			return report
		}
		if count > 0 {
			s.Logger.Info("posts already cached, skipping rescan", "author", handle, "cached", count)
			return report
		}
	}

	groups, err := s.Archive.GroupFiles(handle)
	if err != nil {
		// Listing failure is fatal for this author's scan only; deletions
		// already committed stay reported.
		s.Logger.Error("cannot list author directory", "author", handle, "error", err)
		syncErrors.WithLabelValues("listing").Inc()
		report.Err = err
		return report
	}

	existing, err := s.Posts.ExistsByID(ctx, lo.Keys(groups)...)
	if err != nil {
		s.Logger.Error("existing post lookup failed", "author", handle, "error", err)
		syncErrors.WithLabelValues("existing_ids").Inc()
		report.Err = err
		return report
	}

	extracted := s.extractPosts(ctx, handle, author.ID, groups, existing)
	report.Added = len(extracted)

	if err := s.Posts.InsertAll(ctx, extracted); err != nil {
		s.Logger.Error("failed to commit posts", "author", handle, "error", err)
		syncErrors.WithLabelValues("insert").Inc()
		report.Err = err
		return report
	}

	postsAdded.Add(float64(report.Added))
	s.Logger.Info("sync finished", "author", handle, "added", report.Added, "deleted", report.Deleted)
	return report
}

// refreshProfile merges the most authoritative metadata into the author
// record. Fields the source does not provide keep their stored values.
func (s *Syncer) refreshProfile(ctx context.Context, author *core.Author) {
	profile, ok := s.Archive.AuthorProfile(author.Handle)
	if ok {
		profile.Apply(author)
	}

	if err := s.Authors.Save(ctx, author); err != nil {
		s.Logger.Error("profile refresh commit failed", "author", author.Handle, "error", err)
		syncErrors.WithLabelValues("profile").Inc()
		return
	}
	s.Logger.Debug("profile refreshed", "author", author.Handle, "from_metadata", ok)
}
