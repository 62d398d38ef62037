// Package upload sends user images to Cloudinary and hands back the
// durable secure URL that gets persisted as imageUrl / picPath.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUploadFailed classifies any fault from the hosting service.
var ErrUploadFailed = errors.New("image upload failed")

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds an uploader from a CLOUDINARY_URL-style URL.
func NewCloudinary(url string) (*CloudinaryUploader, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: CLOUDINARY_URL is not set", ErrUploadFailed)
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return &CloudinaryUploader{cld: cld, folder: "snapwall"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       publicID,
		Transformation: "c_limit,w_1200,h_1200,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return result.SecureURL, nil
}

// Noop discards uploads and returns an empty reference. Used when no
// Cloudinary credentials are configured, so the app still runs locally.
type Noop struct{}

func (Noop) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	return "", nil
}
