package posts

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"roost/internal/core"
	"roost/internal/persistence"
)

type Repository struct {
	Logger *slog.Logger
	DB     *persistence.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

// ExistsByID reports which of the given identifiers are already stored.
// Identifiers are globally unique across authors, so the check is global too.
// One consistent read per sync backs the existing-post skip check.
func (r *Repository) ExistsByID(ctx context.Context, ids ...string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	var existing []string
	err := r.DB.Model(&core.Post{}).
		WithContext(ctx).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error

	if err != nil {
		return nil, err
	}
	return lo.Associate(existing, func(id string) (string, bool) {
		return id, true
	}), nil
}

// InsertAll persists the posts in a single transactional unit.
func (r *Repository) InsertAll(ctx context.Context, posts []core.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&posts).Error
	})
}

// DeleteByAuthor removes every post the author owns and returns how many
// records went away.
func (r *Repository) DeleteByAuthor(ctx context.Context, authorID uint) (int, error) {
	result := r.DB.Model(&core.Post{}).
		WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&core.Post{})

	return int(result.RowsAffected), result.Error
}

func (r *Repository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&core.Post{}).
		WithContext(ctx).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.Model(&core.Post{}).WithContext(ctx).Count(&count).Error
	return count, err
}

// PageByAuthor returns one page of the author's posts in reverse-chronological
// order. IDs are digit strings of varying length, so ordering by length first
// makes the string sort numeric.
func (r *Repository) PageByAuthor(ctx context.Context, authorID uint, page, perPage int) ([]core.Post, error) {
	if page < 1 {
		page = 1
	}

	var posts []core.Post
	err := r.DB.Model(&core.Post{}).
		WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("length(id) DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	return posts, err
}
