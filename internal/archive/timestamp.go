package archive

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// TimeLayout is the datetime format the downloader writes into metadata
// `date` fields and caption first lines.
const TimeLayout = "2006-01-02 15:04:05"

// Epoch timestamps embedded in filenames are only trusted inside
// [2000-01-01, 2050-01-01).
const (
	epochFloor   = 946684800
	epochCeiling = 2524608000
)

var epochPattern = regexp.MustCompile(`[0-9]{9,11}`)

// ResolveTimestamp derives one timestamp for a post from a strict fallback
// chain: metadata `date` field, caption first line, filename-embedded epoch,
// filesystem mtime. The first structurally valid source wins. A nil result
// means no source was usable, which is a valid state for a post.
func (a *Archive) ResolveTimestamp(handle, id string, files []string) *time.Time {
	dir := a.AuthorDir(handle)

	if ts := a.metadataTimestamp(dir, id, files); ts != nil {
		return ts
	}
	if ts := a.captionTimestamp(dir, id, files); ts != nil {
		return ts
	}
	if ts := filenameEpoch(files); ts != nil {
		return ts
	}
	return a.modTime(dir, id, files)
}

func (a *Archive) metadataTimestamp(dir, id string, files []string) *time.Time {
	name, found := lo.Find(files, func(f string) bool {
		return strings.HasSuffix(f, MetadataSuffix)
	})
	if !found {
		return nil
	}

	doc, err := ReadDocument(filepath.Join(dir, name))
	if err != nil {
		a.Logger.Warn("unreadable metadata file, skipping date source",
			"post", id, "file", name, "error", err)
		return nil
	}

	dateStr, ok := doc.String("date")
	if !ok {
		return nil
	}
	ts, err := time.ParseInLocation(TimeLayout, dateStr, time.Local)
	if err != nil {
		a.Logger.Debug("metadata date field is not a datetime",
			"post", id, "file", name, "date", dateStr)
		return nil
	}
	return &ts
}

func (a *Archive) captionTimestamp(dir, id string, files []string) *time.Time {
	name, found := lo.Find(files, func(f string) bool {
		return strings.HasSuffix(f, CaptionSuffix)
	})
	if !found {
		return nil
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		a.Logger.Warn("unreadable caption file, skipping caption source",
			"post", id, "file", name, "error", err)
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil
	}
	firstLine := strings.TrimSpace(scanner.Text())

	ts, err := time.ParseInLocation(TimeLayout, firstLine, time.Local)
	if err != nil {
		return nil
	}
	return &ts
}

// filenameEpoch scans each filename's stem for the first 9-11 digit run and
// interprets it as Unix epoch seconds. The first filename in group order with
// an in-bounds value wins; out-of-bounds runs do not block later filenames.
func filenameEpoch(files []string) *time.Time {
	for _, name := range files {
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		digits := epochPattern.FindString(stem)
		if digits == "" {
			continue
		}
		secs, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		if secs < epochFloor || secs >= epochCeiling {
			continue
		}
		ts := time.Unix(secs, 0)
		return &ts
	}
	return nil
}

func (a *Archive) modTime(dir, id string, files []string) *time.Time {
	if len(files) == 0 {
		return nil
	}

	info, err := os.Stat(filepath.Join(dir, files[0]))
	if err != nil {
		a.Logger.Warn("cannot stat file for mtime fallback",
			"post", id, "file", files[0], "error", err)
		return nil
	}
	ts := info.ModTime()
	return &ts
}
