package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3 struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastInput = params
	return &s3.PutObjectOutput{}, nil
}

func TestValidateImageRules(t *testing.T) {
	assert.NoError(t, ValidateImage("image/png", 1024))
	assert.NoError(t, ValidateImage("image/webp", MaxUploadSize))

	assert.Error(t, ValidateImage("application/pdf", 1024))
	assert.Error(t, ValidateImage("image/tiff", 1024))
	assert.Error(t, ValidateImage("image/png", MaxUploadSize+1))
}

func TestUploadStoresUnderPrefixAndReturnsPublicURL(t *testing.T) {
	client := &fakeS3{}
	svc := NewUploadService(client, "storefront-images", "products/", "", "ap-south-1")

	url, err := svc.Upload(context.Background(), bytes.NewReader([]byte("img")), "image/jpeg", 3)
	assert.NoError(t, err)

	assert.NotNil(t, client.lastInput)
	assert.Equal(t, "storefront-images", *client.lastInput.Bucket)
	assert.True(t, strings.HasPrefix(*client.lastInput.Key, "products/"))
	assert.True(t, strings.HasSuffix(*client.lastInput.Key, ".jpg"))
	assert.Equal(t, "image/jpeg", *client.lastInput.ContentType)

	assert.True(t, strings.HasPrefix(url, "https://storefront-images.s3.ap-south-1.amazonaws.com/products/"))
}

func TestUploadRejectsBeforeTouchingS3(t *testing.T) {
	client := &fakeS3{}
	svc := NewUploadService(client, "storefront-images", "products/", "", "ap-south-1")

	_, err := svc.Upload(context.Background(), bytes.NewReader(nil), "application/pdf", 10)
	assert.Error(t, err)
	assert.Nil(t, client.lastInput)
}

func TestUploadUsesEndpointURLWhenConfigured(t *testing.T) {
	client := &fakeS3{}
	svc := NewUploadService(client, "storefront-images", "products/", "http://localhost:4566", "ap-south-1")

	url, err := svc.Upload(context.Background(), bytes.NewReader([]byte("img")), "image/png", 3)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:4566/storefront-images/products/"))
}
