package syncing

import (
	"context"

	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	"roost/internal/core"
)

type fileGroup struct {
	id    string
	files []string
}

// extractPosts runs every not-yet-stored file group through the extraction
// pipeline and collects the resulting post records. Extraction itself is
// best-effort and never fails a group; a pipeline error can only come from
// context cancellation.
func (s *Syncer) extractPosts(
	ctx context.Context,
	handle string,
	authorID uint,
	groups map[string][]string,
	existing map[string]bool,
) []core.Post {
	var extracted []core.Post

	in := make(chan pips.D[fileGroup])

	pipeline := pips.New[fileGroup, core.Post]().
		Then(apply.Map(func(_ context.Context, g fileGroup) (core.Post, error) {
			return s.Archive.ExtractPost(handle, authorID, g.id, g.files), nil
		})).
		Then(apply.Each(func(_ context.Context, post core.Post) error {
			extracted = append(extracted, post)
			return nil
		}))

	go func() {
		defer close(in)
		for id, files := range groups {
			if existing[id] {
				s.Logger.Debug("post already stored, skipping", "author", handle, "post", id)
				continue
			}
			in <- pips.NewD(fileGroup{id: id, files: files})
		}
	}()

	if err := pipeline.Run(ctx, in).Wait(ctx); err != nil {
		s.Logger.Error("extraction pipeline aborted", "author", handle, "error", err)
	}
	return extracted
}
