package storage

import (
	"encoding/base64"
	"strings"
)

// The add/edit forms submit cropped images as data URLs
// (data:image/png;base64,....). Anything else in the image field is
// treated as an already-stored reference URL and passed through.

const dataURLPrefix = "data:image/"

// IsDataURL reports whether the image payload is an embedded binary
// blob that still needs uploading.
func IsDataURL(image string) bool {
	return strings.HasPrefix(image, dataURLPrefix)
}

// DecodeDataURL splits a base64 image data URL into content type and
// raw bytes. ok is false for anything that is not a well-formed
// base64 image data URL.
func DecodeDataURL(image string) (contentType string, data []byte, ok bool) {
	if !IsDataURL(image) {
		return "", nil, false
	}

	rest := strings.TrimPrefix(image, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	contentType = strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}

	return contentType, data, true
}

// ExtensionForContentType picks a file extension for the object key.
func ExtensionForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}
