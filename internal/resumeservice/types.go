package resumeservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

const (
	MaxFileSize   = 5 << 20
	PDFType       = "application/pdf"
	UploadTimeout = 30 * time.Second
)

type Resume struct {
	ID         uuid.UUID `json:"id"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	ObjectKey  string    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
	Active     bool      `json:"active"`
}

// UploadRequest is a single file taken from a multipart form.
type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ResumeModel struct {
	db *sql.DB
}

type ResumeService struct {
	m      *ResumeModel
	store  common.ObjectStore
	cache  *common.Cache
	logger *slog.Logger
}
