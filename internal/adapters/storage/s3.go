// Package storage provides the blob-storage adapter used for authored media.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"communityhub/internal/domain"
)

// S3Config holds configuration for the S3 uploader.
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicURL is the base URL returned for uploaded objects,
	// e.g. a CDN or website endpoint. Defaults to the bucket's
	// virtual-hosted S3 URL.
	PublicURL string
}

type s3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Uploader returns an Uploader that stores objects in the configured
// S3 bucket and returns their public URL.
func NewS3Uploader(config S3Config) (domain.Uploader, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	awsCfg := aws.Config{
		Region: config.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			),
		),
	}
	baseURL := config.PublicURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
	}
	return &s3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  config.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (u *s3Uploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return u.baseURL + "/" + key, nil
}
