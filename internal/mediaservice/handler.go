package mediaservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

func NewMediaService(store common.ObjectStore) *MediaService {
	return &MediaService{store: store}
}

// UploadImage resizes a JPEG or PNG and stores it under images/ as JPEG.
func (s *MediaService) UploadImage(ctx context.Context, req *UploadRequest) (*Image, error) {
	v := common.NewValidator()
	validateImage(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	data, width, height, err := process(req.Data)
	switch {
	case errors.Is(err, errCorruptImage):
		v.AddError("image", "could not be decoded")
		return nil, v.ValidationError()
	case err != nil:
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	url, err := s.store.Upload(ctx, "images/"+uuid.NewString()+".jpg", data, "image/jpeg")
	if err != nil {
		return nil, common.NewDependencyError("object storage", err)
	}

	return &Image{URL: url, Width: width, Height: height}, nil
}
