package archive_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorProfile(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	writeFile(t, dir, "111.json",
		`{"author": {"nick": "alice", "name": "Alice Old", "followers_count": 10}}`)
	writeFile(t, dir, "222.json",
		`{"author": {"nick": "alice", "name": "Alice A.", "followers_count": 100, "verified": true}}`)

	profile, ok := a.AuthorProfile("alice")
	require.True(t, ok)

	// 222.json sorts after 111.json, so it is the more authoritative source.
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Alice A.", *profile.Name)
	require.NotNil(t, profile.FollowersCount)
	assert.Equal(t, 100, *profile.FollowersCount)
	require.NotNil(t, profile.Verified)
	assert.True(t, *profile.Verified)
	assert.Nil(t, profile.Location)
}

func TestAuthorProfileUserRecord(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "bob")

	// Some downloader versions embed the sub-record under "user", and the
	// match may come from the name field instead of the nick.
	writeFile(t, dir, "111.json", `{"user": {"name": "bob", "description": "hello"}}`)

	profile, ok := a.AuthorProfile("bob")
	require.True(t, ok)
	require.NotNil(t, profile.Description)
	assert.Equal(t, "hello", *profile.Description)
}

func TestAuthorProfileSkipsNonMatching(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "carol")

	// The newest file quotes somebody else; the older one matches.
	writeFile(t, dir, "111.json", `{"author": {"nick": "carol", "statuses_count": 5}}`)
	writeFile(t, dir, "999.json", `{"author": {"nick": "somebody-else"}}`)

	profile, ok := a.AuthorProfile("carol")
	require.True(t, ok)
	require.NotNil(t, profile.StatusesCount)
	assert.Equal(t, 5, *profile.StatusesCount)
}

func TestAuthorProfileNoMatch(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "dora")

	writeFile(t, dir, "111.json", `{not json`)
	writeFile(t, dir, "222.json", `{"author": {"nick": "not-dora"}}`)
	writeFile(t, dir, "333.json", `{"no_author_record": true}`)

	_, ok := a.AuthorProfile("dora")
	assert.False(t, ok)
}
