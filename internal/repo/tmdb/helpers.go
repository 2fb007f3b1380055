package tmdb

import "strings"

// PosterURL builds an image CDN URL from the size token and the poster path
// as TMDB serves it (leading slash included).
func PosterURL(base, size, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + size + path
}
