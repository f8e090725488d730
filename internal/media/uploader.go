package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader stores an image and returns its hosted URL.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from API credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

// UploadImage pushes the file to Cloudinary and returns the delivery URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: "avatars/" + uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return resp.SecureURL, nil
}
