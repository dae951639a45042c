package archive

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"roost/internal/core"
)

// ExtractPost builds one post record from the post's file group. Every step is
// best-effort: a missing or malformed side-car degrades the corresponding
// field to its zero/unknown state instead of failing the post.
func (a *Archive) ExtractPost(handle string, authorID uint, id string, files []string) core.Post {
	post := core.Post{
		ID:       id,
		AuthorID: authorID,
	}

	dir := a.AuthorDir(handle)

	if doc := a.readMetadata(dir, id, files); doc != nil {
		post.RepostCount = doc.IntPtr("retweet_count")
		post.ReplyCount = doc.IntPtr("reply_count")
		post.FavoriteCount = doc.IntPtr("favorite_count")
		post.BookmarkCount = doc.IntPtr("bookmark_count")

		if text, ok := doc.FirstString("full_text", "content", "text"); ok {
			post.Body = &text
		}

		if raw, err := doc.Serialize(); err == nil {
			post.RawMetadata = &raw
		}
	}

	if post.Body == nil {
		post.Body = a.captionBody(dir, id, files)
	}

	post.MediaPaths = lo.FilterMap(files, func(name string, _ int) (string, bool) {
		return path.Join(handle, name), IsMediaFile(name)
	})

	post.Timestamp = a.ResolveTimestamp(handle, id, files)

	return post
}

func (a *Archive) readMetadata(dir, id string, files []string) Document {
	name, found := lo.Find(files, func(f string) bool {
		return strings.HasSuffix(f, MetadataSuffix)
	})
	if !found {
		return nil
	}

	doc, err := ReadDocument(filepath.Join(dir, name))
	if err != nil {
		a.Logger.Warn("malformed metadata file, extracting without it",
			"post", id, "file", name, "error", err)
		return nil
	}
	return doc
}

// captionBody reads the caption file's content as the post body. A first line
// that is itself a datetime is dropped; any other first line stays part of
// the body.
func (a *Archive) captionBody(dir, id string, files []string) *string {
	name, found := lo.Find(files, func(f string) bool {
		return strings.HasSuffix(f, CaptionSuffix)
	})
	if !found {
		return nil
	}

	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		a.Logger.Warn("unreadable caption file, extracting without it",
			"post", id, "file", name, "error", err)
		return nil
	}

	if len(raw) == 0 {
		return nil
	}

	content := string(raw)
	firstLine, rest, _ := strings.Cut(content, "\n")

	var body string
	if _, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(firstLine), time.Local); err == nil {
		body = strings.TrimSpace(rest)
	} else {
		body = strings.TrimSpace(content)
	}
	return &body
}
