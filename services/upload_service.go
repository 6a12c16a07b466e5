package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxUploadSize is the largest accepted image, 5 MB.
const MaxUploadSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// S3API is the subset of the S3 client the upload path uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadService validates and stores product images, returning the
// public URL saved on the product record.
type UploadService struct {
	client   S3API
	bucket   string
	prefix   string
	endpoint string
	region   string
}

func NewUploadService(client S3API, bucket, prefix, endpoint, region string) *UploadService {
	return &UploadService{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		endpoint: endpoint,
		region:   region,
	}
}

// ValidateImage checks content type and size before any bytes move.
func ValidateImage(contentType string, size int64) error {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fmt.Errorf("unsupported image type %q", contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("image exceeds the 5 MB limit")
	}
	return nil
}

// Upload stores the image under a generated key and returns its public URL.
func (s *UploadService) Upload(ctx context.Context, body io.Reader, contentType string, size int64) (string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", err
	}

	key := path.Join(s.prefix, uuid.NewString()+allowedImageTypes[contentType])

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *UploadService) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
