package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore stores an uploaded image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

// S3ImageStore uploads images to an S3 bucket.
type S3ImageStore struct {
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

func NewS3ImageStore(client manager.UploadAPIClient, bucket, publicBaseURL string) *S3ImageStore {
	return &S3ImageStore{
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

func (s *S3ImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(folder, uuid.NewString()+strings.ToLower(path.Ext(filename)))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, nil
}
