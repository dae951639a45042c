package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Author owns one archive directory. The handle is the directory name and is
// immutable once the record exists; every other field is refreshed from the
// newest metadata file that mentions the author.
type Author struct {
	ID     uint   `gorm:"primaryKey"`
	Handle string `gorm:"uniqueIndex;not null"`

	Name        *string
	Nick        *string
	Location    *string
	Description *string
	Verified    *bool
	AvatarURL   *string

	FavouritesCount *int
	FollowersCount  *int
	FriendsCount    *int
	ListedCount     *int
	MediaCount      *int
	StatusesCount   *int

	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Author) TableName() string {
	return "authors"
}

// Post is one logical archive item, keyed by the digit prefix its files share.
// Once persisted it is never updated in place; only a forced rebuild replaces it.
type Post struct {
	ID       string `gorm:"primaryKey"`
	AuthorID uint   `gorm:"index;not null"`

	Timestamp *time.Time `gorm:"index"`
	Body      *string

	MediaPaths MediaPaths `gorm:"type:text"`

	RepostCount   *int
	ReplyCount    *int
	FavoriteCount *int
	BookmarkCount *int

	// Original metadata payload, stored verbatim and never re-validated.
	RawMetadata *string
}

func (Post) TableName() string {
	return "posts"
}

// MediaPaths is an ordered list of archive-root-relative, forward-slash media
// paths, persisted as a JSON array in a text column.
type MediaPaths []string

func (m MediaPaths) Value() (driver.Value, error) {
	if m == nil {
		m = MediaPaths{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MediaPaths) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("%w: cannot scan %T into MediaPaths", ErrUnsupportedValue, src)
	}
}
