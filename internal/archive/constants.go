package archive

import "strings"

// Side-car suffixes and the recognized media set. These are shared by the
// grouper, the extractor and the timestamp resolver; nothing else in the
// repository hardcodes a file role.
const (
	MetadataSuffix = ".json"
	CaptionSuffix  = ".txt"
)

var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	VideoExtensions = []string{".mp4"}

	MediaExtensions = append(append([]string{}, ImageExtensions...), VideoExtensions...)
)

// IsMediaFile reports whether the filename's extension is in the recognized
// media set. Matching is case-insensitive.
func IsMediaFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range MediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
