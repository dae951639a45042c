package authors

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"roost/internal/core"
	"roost/internal/persistence"
)

type Repository struct {
	Logger *slog.Logger
	DB     *persistence.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "authors.Repository")
	return nil
}

// FindByHandle returns the author with the given handle, or nil when no such
// record exists.
func (r *Repository) FindByHandle(ctx context.Context, handle string) (*core.Author, error) {
	var author core.Author
	err := r.DB.Model(&core.Author{}).
		WithContext(ctx).
		Where("handle = ?", handle).
		First(&author).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *Repository) Create(ctx context.Context, author *core.Author) error {
	return r.DB.Model(&core.Author{}).WithContext(ctx).Create(author).Error
}

// Save persists the author's current field values as one transactional unit.
func (r *Repository) Save(ctx context.Context, author *core.Author) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Save(author).Error
	})
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.Model(&core.Author{}).WithContext(ctx).Count(&count).Error
	return count, err
}

func (r *Repository) All(ctx context.Context) ([]core.Author, error) {
	var all []core.Author
	err := r.DB.Model(&core.Author{}).
		WithContext(ctx).
		Order("handle").
		Find(&all).Error
	return all, err
}
