package upload

import (
	"fmt"
	"strings"
)

// Kind selects the key namespace and default content type of an upload.
type Kind string

const (
	KindVideo     Kind = "video"
	KindThumbnail Kind = "thumbnail"
)

const (
	VideoContentType            = "video/mp4"
	DefaultThumbnailContentType = "image/jpeg"
)

// thumbnailMIMEs lists the image types a thumbnail may declare.
var thumbnailMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ParseKind validates a raw kind string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindVideo:
		return KindVideo, nil
	case KindThumbnail:
		return KindThumbnail, nil
	default:
		return "", fmt.Errorf("unknown upload kind %q", raw)
	}
}

// Ticket is a write credential for exactly one object.
type Ticket struct {
	UploadURL   string `json:"uploadUrl"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// ThumbnailContentType returns the declared type when it is an accepted image
// type and image/jpeg otherwise.
func ThumbnailContentType(hint string) string {
	normalized := strings.ToLower(strings.TrimSpace(hint))
	if i := strings.Index(normalized, ";"); i >= 0 {
		normalized = strings.TrimSpace(normalized[:i])
	}
	if thumbnailMIMEs[normalized] {
		return normalized
	}
	return DefaultThumbnailContentType
}

func thumbnailExtension(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

// objectKey builds the storage key for kind around a generated identifier.
func objectKey(kind Kind, id, contentType string) string {
	if kind == KindVideo {
		return "videos/" + id + ".mp4"
	}
	return "thumbnails/" + id + thumbnailExtension(contentType)
}
