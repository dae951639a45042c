package archive_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roost/internal/archive"
	"roost/internal/config"
)

func newTestArchive(t *testing.T) (*archive.Archive, string) {
	t.Helper()

	root := t.TempDir()
	a := &archive.Archive{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{ArchiveRoot: root},
	}
	require.NoError(t, a.Init(t.Context()))
	return a, root
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestPostID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"123456789.jpg", "123456789", true},
		{"123_photo.png", "123", true},
		{"42", "42", true},
		{"0001.mp4", "0001", true},
		{"photo_123.jpg", "", false},
		{"", "", false},
		{".hidden", "", false},
		{"abc.json", "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.filename, func(t *testing.T) {
			t.Parallel()

			got, ok := archive.PostID(testCase.filename)
			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestGroupFiles(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	dir := filepath.Join(root, "alice")

	writeFile(t, dir, "111_a.jpg", "")
	writeFile(t, dir, "111_a.json", "{}")
	writeFile(t, dir, "222.mp4", "")
	writeFile(t, dir, "notes.txt", "no digits here")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "333_subdir"), 0o755))

	groups, err := a.GroupFiles("alice")
	require.NoError(t, err)

	assert.Len(t, groups, 2)
	assert.ElementsMatch(t, []string{"111_a.jpg", "111_a.json"}, groups["111"])
	assert.Equal(t, []string{"222.mp4"}, groups["222"])
	assert.NotContains(t, groups, "333")
}

func TestGroupFilesMissingDir(t *testing.T) {
	t.Parallel()

	a, _ := newTestArchive(t)

	_, err := a.GroupFiles("ghost")
	assert.Error(t, err)
}

func TestAuthors(t *testing.T) {
	t.Parallel()

	a, root := newTestArchive(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alice"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bob"), 0o755))
	writeFile(t, root, "stray.txt", "not a directory")

	handles, err := a.Authors()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, handles)
}

func TestIsMediaFile(t *testing.T) {
	t.Parallel()

	assert.True(t, archive.IsMediaFile("111.jpg"))
	assert.True(t, archive.IsMediaFile("111.JPG"))
	assert.True(t, archive.IsMediaFile("111.webp"))
	assert.True(t, archive.IsMediaFile("111.mp4"))
	assert.False(t, archive.IsMediaFile("111.json"))
	assert.False(t, archive.IsMediaFile("111.txt"))
}
