package utils

import "strings"

// mimeTypeToFormat maps media MIME types to the short format label stored
// on a media descriptor.
var mimeTypeToFormat = map[string]string{
	"image/bmp":       "bmp",
	"image/gif":       "gif",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/svg+xml":   "svg",
	"image/tiff":      "tif",
	"image/webp":      "webp",
	"video/avi":       "avi",
	"video/mpeg":      "mpeg",
	"video/mp4":       "mp4",
	"video/ogg":       "ogv",
	"video/quicktime": "mov",
	"video/webm":      "webm",
	"video/x-flv":     "flv",
	"video/x-ms-wmv":  "wmv",
}

// FormatFromMimeType returns the short format label for a MIME type,
// falling back to the raw subtype for anything unmapped.
func FormatFromMimeType(mimeType string) string {
	// Remove parameters if present (e.g. "image/png; charset=binary").
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if format, ok := mimeTypeToFormat[cleaned]; ok {
		return format
	}

	if i := strings.Index(cleaned, "/"); i != -1 && i+1 < len(cleaned) {
		return cleaned[i+1:]
	}

	return "bin"
}
