package resumeservice

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/sushihentaime/portfolio/internal/common"
)

func validateUpload(v *common.Validator, req *UploadRequest) {
	v.Check(common.NotBlank(req.FileName), "resume", "must have a file name")
	v.Check(v.CheckStringLength(req.FileName, 0, 255), "resume", "file name must not be more than 255 characters long")

	v.Check(len(req.Data) > 0, "resume", "must not be empty")
	v.Check(len(req.Data) <= MaxFileSize, "resume", "must not be larger than 5 MiB")

	v.Check(req.ContentType == PDFType, "resume", "must be a PDF document")
	v.Check(mimetype.Detect(req.Data).Is(PDFType), "resume", "must be a PDF document")
}
