package upload

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrNotConfigured = errors.New("upload: cloudinary not configured")

// Uploader pushes image bytes to a hosting service and returns the
// public URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// CloudinaryUploader stores description images on Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds an uploader from a cloudinary:// URL.
func NewCloudinary(rawURL string) (*CloudinaryUploader, error) {
	if rawURL == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: "dambody/descriptions"})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
