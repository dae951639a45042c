package archive

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"roost/internal/core"
)

// AuthorProfile extracts profile fields from the most authoritative metadata
// file in the author's directory. Candidates are tried in descending filename
// order (the downloader's naming makes that correlate with recency) until one
// embeds an author sub-record whose nick or name matches the handle. The
// second return is false when no candidate matches; the stored profile is
// then left as-is.
func (a *Archive) AuthorProfile(handle string) (core.Profile, bool) {
	dir := a.AuthorDir(handle)

	entries, err := os.ReadDir(dir)
	if err != nil {
		a.Logger.Warn("cannot list author directory for profile refresh",
			"author", handle, "error", err)
		return core.Profile{}, false
	}

	var candidates []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), MetadataSuffix) {
			candidates = append(candidates, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))

	for _, name := range candidates {
		doc, err := ReadDocument(filepath.Join(dir, name))
		if err != nil {
			a.Logger.Warn("unreadable metadata file during profile refresh",
				"author", handle, "file", name, "error", err)
			continue
		}

		info, ok := doc.Child("author")
		if !ok {
			info, ok = doc.Child("user")
		}
		if !ok {
			continue
		}

		nick, _ := info.String("nick")
		authorName, _ := info.String("name")
		if nick != handle && authorName != handle {
			continue
		}

		a.Logger.Debug("profile source selected", "author", handle, "file", name)
		return profileFrom(info), true
	}

	return core.Profile{}, false
}

func profileFrom(info Document) core.Profile {
	return core.Profile{
		Name:        info.StringPtr("name"),
		Nick:        info.StringPtr("nick"),
		Location:    info.StringPtr("location"),
		Description: info.StringPtr("description"),
		Verified:    info.BoolPtr("verified"),
		AvatarURL:   info.StringPtr("profile_image"),

		FavouritesCount: info.IntPtr("favourites_count"),
		FollowersCount:  info.IntPtr("followers_count"),
		FriendsCount:    info.IntPtr("friends_count"),
		ListedCount:     info.IntPtr("listed_count"),
		MediaCount:      info.IntPtr("media_count"),
		StatusesCount:   info.IntPtr("statuses_count"),
	}
}
