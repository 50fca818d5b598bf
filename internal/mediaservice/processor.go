package mediaservice

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/sushihentaime/portfolio/internal/common"
)

var permittedTypes = []string{"image/jpeg", "image/png"}

// errCorruptImage marks data whose header is valid but whose pixel data cannot be decoded.
var errCorruptImage = errors.New("corrupt image data")

func validateImage(v *common.Validator, req *UploadRequest) {
	v.Check(len(req.Data) > 0, "image", "must not be empty")
	v.Check(len(req.Data) <= MaxFileSize, "image", "must not be larger than 5 MiB")

	v.Check(common.PermittedValue(req.ContentType, permittedTypes...), "image", "must be a JPEG or PNG image")
	v.Check(mimetype.Detect(req.Data).Is(req.ContentType), "image", "must be a JPEG or PNG image")

	if !v.Valid() {
		return
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(req.Data))
	v.Check(err == nil, "image", "could not be decoded")
	v.Check(err != nil || cfg.Width*cfg.Height <= maxPixels, "image", "has too many pixels")
}

// process fits the image into MaxDimension x MaxDimension and re-encodes it as JPEG. Smaller
// images keep their size.
func process(data []byte) ([]byte, int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", errCorruptImage, err)
	}

	fitted := imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, 0, 0, fmt.Errorf("cannot encode image: %w", err)
	}

	b := fitted.Bounds()
	return buf.Bytes(), b.Dx(), b.Dy(), nil
}
