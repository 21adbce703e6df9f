package catalog

import "strings"

// PlaceholderImage is served whenever a product has no usable image
// reference.
const PlaceholderImage = "/default-image.jpg"

const uploadsPrefix = "/uploads"

// NormalizeImage turns any raw image reference into a display-ready path.
// Absolute URLs and site-rooted /uploads paths pass through; bare filenames
// and relative uploads paths are rooted under /uploads; anything carrying a
// /uploads/ segment mid-string is truncated to start there. The transform is
// idempotent.
func NormalizeImage(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PlaceholderImage
	}
	if s == PlaceholderImage {
		return s
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if strings.HasPrefix(s, uploadsPrefix) {
		return s
	}
	if strings.HasPrefix(s, "uploads/") {
		return "/" + s
	}
	if i := strings.Index(s, uploadsPrefix+"/"); i >= 0 {
		return s[i:]
	}
	return uploadsPrefix + "/" + s
}
