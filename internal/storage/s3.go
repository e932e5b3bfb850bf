package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 stores blobs in an Amazon S3 bucket.
type S3 struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3 creates an S3 provider with the default AWS credential chain.
func NewS3(ctx context.Context, bucket, region string) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *S3) Name() string {
	return "s3"
}

func (s *S3) Upload(ctx context.Context, key string, content io.Reader, contentType string, access Access) (Blob, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	}

	if access == AccessPublic {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return Blob{}, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return Blob{URL: s.url(key), Pathname: key}, nil
}

func (s *S3) Delete(ctx context.Context, blobURL string) error {
	key, err := s.key(blobURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

func (s *S3) url(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// key extracts the object key from a URL returned by Upload.
func (s *S3) key(blobURL string) (string, error) {
	u, err := url.Parse(blobURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if u.Host != fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region) {
		return "", ErrNotFound
	}

	return strings.TrimPrefix(u.Path, "/"), nil
}
