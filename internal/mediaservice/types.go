package mediaservice

import (
	"time"

	"github.com/sushihentaime/portfolio/internal/common"
)

const (
	MaxFileSize   = 5 << 20
	MaxDimension  = 1600
	JPEGQuality   = 85
	UploadTimeout = 30 * time.Second
	// maxPixels rejects images that would decode into an oversized bitmap.
	maxPixels = 40_000_000
)

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
}

type MediaService struct {
	store common.ObjectStore
}
