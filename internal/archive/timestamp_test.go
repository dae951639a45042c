package archive_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localTime(value string) time.Time {
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestResolveTimestampPriority(t *testing.T) {
	t.Parallel()

	// All three sources parse but disagree; the metadata date must win.
	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	writeFile(t, dir, "111_1262340000.json", `{"date": "2020-01-01 10:00:00"}`)
	writeFile(t, dir, "111_1262340000.txt", "2021-06-15 12:00:00\nbody")
	files := []string{"111_1262340000.json", "111_1262340000.txt"}

	ts := a.ResolveTimestamp("alice", "111", files)
	require.NotNil(t, ts)
	assert.Equal(t, localTime("2020-01-01 10:00:00"), *ts)
}

func TestResolveTimestampCaptionFallback(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	// Malformed date field falls through to the caption's first line.
	writeFile(t, dir, "111.json", `{"date": "January 1st"}`)
	writeFile(t, dir, "111.txt", "2021-06-15 12:00:00\nbody")

	ts := a.ResolveTimestamp("alice", "111", []string{"111.json", "111.txt"})
	require.NotNil(t, ts)
	assert.Equal(t, localTime("2021-06-15 12:00:00"), *ts)
}

func TestResolveTimestampFilenameEpoch(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	writeFile(t, dir, "111_1577872800.jpg", "")

	ts := a.ResolveTimestamp("alice", "111", []string{"111_1577872800.jpg"})
	require.NotNil(t, ts)
	assert.Equal(t, time.Unix(1577872800, 0), *ts)
}

func TestResolveTimestampEpochBounds(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	// 10 digits but the value 1 is far below the 2000-01-01 floor, so the
	// epoch source is rejected and resolution falls through to mtime.
	writeFile(t, dir, "111_0000000001.jpg", "")
	mtime := localTime("2023-03-03 03:03:03")
	require.NoError(t, os.Chtimes(filepath.Join(dir, "111_0000000001.jpg"), mtime, mtime))

	ts := a.ResolveTimestamp("alice", "111", []string{"111_0000000001.jpg"})
	require.NotNil(t, ts)
	assert.True(t, mtime.Equal(*ts))
}

func TestResolveTimestampExtensionExcluded(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	// The digit run lives entirely in the extension and must not count.
	name := "111.1577872800"
	writeFile(t, dir, name, "")
	mtime := localTime("2019-05-05 05:05:05")
	require.NoError(t, os.Chtimes(filepath.Join(dir, name), mtime, mtime))

	ts := a.ResolveTimestamp("alice", "111", []string{name})
	require.NotNil(t, ts)
	assert.True(t, mtime.Equal(*ts))
}

func TestResolveTimestampUnknown(t *testing.T) {
	t.Parallel()

	a, _ := newTestArchive(t)

	// The group's only file does not exist; every source degrades to nil.
	ts := a.ResolveTimestamp("alice", "111", []string{"111_gone.jpg"})
	assert.Nil(t, ts)
}
