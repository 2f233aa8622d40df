package upload

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"              // Cloudinary SDK
	"github.com/cloudinary/cloudinary-go/v2/api/uploader" // Upload API
)

// Service uploads product images to the Cloudinary blob store
type Service struct {
	cld *cloudinary.Cloudinary
}

// NewService builds a Cloudinary-backed upload service from account credentials
func NewService(cloudName, apiKey, apiSecret string) (*Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Service{cld: cld}, nil
}

// UploadImage stores the file under images/<filename> and returns its public URL
func (s *Service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: "images/" + filename,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
