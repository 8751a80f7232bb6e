package domain

import (
	"io"
	"strings"
)

// ResourceType is the asset service's content category
type ResourceType string

const (
	ResourceImage ResourceType = "image"
	ResourceRaw   ResourceType = "raw" // documents (PDF)
	ResourceVideo ResourceType = "video"
	ResourceAuto  ResourceType = "auto"
)

// ResourceTypeFor infers the asset category from a MIME content type
func ResourceTypeFor(contentType string) ResourceType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return ResourceImage
	case contentType == "application/pdf":
		return ResourceRaw
	case strings.HasPrefix(contentType, "video/"):
		return ResourceVideo
	default:
		return ResourceAuto
	}
}

// AssetUpload is one file headed for the external asset service
type AssetUpload struct {
	FileName    string
	ContentType string
	Folder      string // destination hint
	Body        io.Reader
}
