// Package media uploads avatar images to the hosting service.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// AllowedFormats are the content types accepted for avatar uploads.
var AllowedFormats = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadResult identifies a hosted image.
type UploadResult struct {
	PublicID string
	URL      string
}

// Uploader stores an image and returns its hosted reference.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (*UploadResult, error)
}

// CloudinaryUploader uploads avatars to Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL-style
// connection string.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{client: cld, folder: "avatars"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (*UploadResult, error) {
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &UploadResult{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}
